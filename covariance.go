/* Copyright (C) 2023 The chromVAR-go authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package chromvar

/* -------------------------------------------------------------------------- */

import "fmt"
import "math"

/* -------------------------------------------------------------------------- */

// Symmetric normalized covariance between the deviation vectors of a
// set of k-mers. Values are scaled by the standard deviations of both
// vectors, so that the diagonal is one for any k-mer with non-constant
// deviations. Immutable after construction.
type KmerCovariances struct {
  Kmers  KmerList
  Values [][]float64
  index    map[Kmer]int
}

/* -------------------------------------------------------------------------- */

func NewKmerCovariances(kmers KmerList, values [][]float64) (KmerCovariances, error) {
  r := KmerCovariances{}
  if len(kmers) != len(values) {
    return r, fmt.Errorf("NewKmerCovariances(): number of k-mers does not match number of rows")
  }
  index := make(map[Kmer]int)
  for i, kmer := range kmers {
    if len(values[i]) != len(kmers) {
      return r, fmt.Errorf("NewKmerCovariances(): covariance matrix is not square")
    }
    if _, ok := index[kmer]; ok {
      return r, fmt.Errorf("NewKmerCovariances(): duplicate k-mer `%s'", kmer)
    }
    index[kmer] = i
  }
  for i := 0; i < len(kmers); i++ {
    for j := i+1; j < len(kmers); j++ {
      if values[i][j] != values[j][i] {
        return r, fmt.Errorf("NewKmerCovariances(): covariance matrix is not symmetric")
      }
    }
  }
  r.Kmers  = kmers
  r.Values = values
  r.index  = index
  return r, nil
}

/* -------------------------------------------------------------------------- */

// Compute normalized covariances between all pairs of k-mer deviation
// vectors. A k-mer with constant deviations has zero covariance with
// every other k-mer and zero self-covariance.
func ComputeKmerCovariances(deviations KmerDeviations) KmerCovariances {
  n := deviations.Len()
  m := len(deviations.Samples)

  if m < 2 {
    values := make([][]float64, n)
    for i := 0; i < n; i++ {
      values[i] = make([]float64, n)
    }
    r, err := NewKmerCovariances(deviations.Kmers, values)
    if err != nil {
      panic(err)
    }
    return r
  }
  means := make([]float64, n)
  sds   := make([]float64, n)
  for i := 0; i < n; i++ {
    for j := 0; j < m; j++ {
      means[i] += deviations.Z[i][j]
    }
    means[i] /= float64(m)
    for j := 0; j < m; j++ {
      d := deviations.Z[i][j]-means[i]
      sds[i] += d*d
    }
    sds[i] = math.Sqrt(sds[i]/float64(m-1))
  }
  values := make([][]float64, n)
  for i := 0; i < n; i++ {
    values[i] = make([]float64, n)
  }
  for i := 0; i < n; i++ {
    for j := i; j < n; j++ {
      if sds[i] == 0.0 || sds[j] == 0.0 {
        continue
      }
      sum := 0.0
      for l := 0; l < m; l++ {
        sum += (deviations.Z[i][l]-means[i])*(deviations.Z[j][l]-means[j])
      }
      v := sum/float64(m-1)/(sds[i]*sds[j])
      values[i][j] = v
      values[j][i] = v
    }
  }
  r, err := NewKmerCovariances(deviations.Kmers, values)
  if err != nil {
    panic(err)
  }
  return r
}

/* -------------------------------------------------------------------------- */

func (obj KmerCovariances) Len() int {
  return len(obj.Kmers)
}

func (obj KmerCovariances) At(i, j int) float64 {
  return obj.Values[i][j]
}

func (obj KmerCovariances) Get(a, b Kmer) (float64, bool) {
  i, ok := obj.index[a]
  if !ok {
    return 0.0, false
  }
  j, ok := obj.index[b]
  if !ok {
    return 0.0, false
  }
  return obj.Values[i][j], true
}
