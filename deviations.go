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
import "sort"

/* -------------------------------------------------------------------------- */

// Bias-corrected deviation Z-scores for a set of k-mers, one score per
// sample. All k-mers have the same length and share the sample ordering.
// The structure is immutable after construction.
type KmerDeviations struct {
  Kmers   KmerList
  Samples []string
  Z       [][]float64
  index     map[Kmer]int
}

/* -------------------------------------------------------------------------- */

func NewKmerDeviations(kmers KmerList, samples []string, z [][]float64) (KmerDeviations, error) {
  r := KmerDeviations{}
  if len(kmers) != len(z) {
    return r, fmt.Errorf("NewKmerDeviations(): number of k-mers does not match number of rows")
  }
  if len(kmers) == 0 {
    return r, fmt.Errorf("NewKmerDeviations(): empty deviation set")
  }
  k := kmers[0].K()
  index := make(map[Kmer]int)
  for i, kmer := range kmers {
    if kmer.K() != k {
      return r, fmt.Errorf("NewKmerDeviations(): k-mer `%s' has invalid length", kmer)
    }
    if _, ok := index[kmer]; ok {
      return r, fmt.Errorf("NewKmerDeviations(): duplicate k-mer `%s'", kmer)
    }
    if len(z[i]) != len(samples) {
      return r, fmt.Errorf("NewKmerDeviations(): row `%s' has invalid number of samples", kmer)
    }
    index[kmer] = i
  }
  r.Kmers   = kmers
  r.Samples = samples
  r.Z       = z
  r.index   = index
  return r, nil
}

/* -------------------------------------------------------------------------- */

func (obj KmerDeviations) Len() int {
  return len(obj.Kmers)
}

func (obj KmerDeviations) K() int {
  return obj.Kmers[0].K()
}

func (obj KmerDeviations) At(i, j int) float64 {
  return obj.Z[i][j]
}

func (obj KmerDeviations) Row(kmer Kmer) ([]float64, bool) {
  if i, ok := obj.index[kmer]; ok {
    return obj.Z[i], true
  }
  return nil, false
}

/* variability
 * -------------------------------------------------------------------------- */

// Sample standard deviation of the i-th Z-score vector.
func (obj KmerDeviations) VariabilityAt(i int) float64 {
  z := obj.Z[i]
  if len(z) < 2 {
    return 0.0
  }
  mean := 0.0
  for _, v := range z {
    mean += v
  }
  mean /= float64(len(z))
  sum := 0.0
  for _, v := range z {
    sum += (v-mean)*(v-mean)
  }
  return math.Sqrt(sum/float64(len(z)-1))
}

func (obj KmerDeviations) Variability(kmer Kmer) (float64, bool) {
  if i, ok := obj.index[kmer]; ok {
    return obj.VariabilityAt(i), true
  }
  return 0.0, false
}

/* -------------------------------------------------------------------------- */

type KmerVariability struct {
  Kmer  Kmer
  Value float64
}

type KmerVariabilityList []KmerVariability

func (obj KmerVariabilityList) Len() int {
  return len(obj)
}

func (obj KmerVariabilityList) Less(i, j int) bool {
  if obj[i].Value != obj[j].Value {
    return obj[i].Value > obj[j].Value
  }
  // ties are broken by k-mer lexical order
  return obj[i].Kmer < obj[j].Kmer
}

func (obj KmerVariabilityList) Swap(i, j int) {
  obj[i], obj[j] = obj[j], obj[i]
}

func (obj KmerVariabilityList) Sort() {
  sort.Sort(obj)
}

/* -------------------------------------------------------------------------- */

// Per-k-mer variability sorted in descending order.
func (obj KmerDeviations) Variabilities() KmerVariabilityList {
  r := make(KmerVariabilityList, obj.Len())
  for i := 0; i < obj.Len(); i++ {
    r[i] = KmerVariability{obj.Kmers[i], obj.VariabilityAt(i)}
  }
  r.Sort()
  return r
}
