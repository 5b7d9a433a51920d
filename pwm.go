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

import "errors"
import "fmt"
import "math"

/* -------------------------------------------------------------------------- */

var ErrInvalidMotif = errors.New("invalid motif")

const pwmEpsilon = 1e-6

/* -------------------------------------------------------------------------- */

// Position-weight matrix with one row per nucleotide and one column per
// motif position. Every column is a probability distribution over the
// nucleotide alphabet. Immutable after construction.
type PWM struct {
  Values [][]float64
}

/* -------------------------------------------------------------------------- */

// Construct a PWM from a matrix indexed by [nucleotide code][position].
// Construction fails if the matrix does not have one row per nucleotide,
// has zero width, contains negative entries, or has columns that do not
// sum to one. Malformed input is never silently normalized.
func NewPWM(values [][]float64) (PWM, error) {
  r := PWM{}
  alphabet := NucleotideAlphabet{}
  if len(values) != alphabet.Length() {
    return r, fmt.Errorf("NewPWM(): %w: matrix must have one row per nucleotide", ErrInvalidMotif)
  }
  n := len(values[0])
  if n == 0 {
    return r, fmt.Errorf("NewPWM(): %w: matrix has zero width", ErrInvalidMotif)
  }
  for i := 0; i < len(values); i++ {
    if len(values[i]) != n {
      return r, fmt.Errorf("NewPWM(): %w: rows have unequal lengths", ErrInvalidMotif)
    }
  }
  for j := 0; j < n; j++ {
    sum := 0.0
    for i := 0; i < len(values); i++ {
      if values[i][j] < 0.0 {
        return r, fmt.Errorf("NewPWM(): %w: negative entry at position %d", ErrInvalidMotif, j)
      }
      sum += values[i][j]
    }
    if math.Abs(sum-1.0) > pwmEpsilon {
      return r, fmt.Errorf("NewPWM(): %w: column %d does not sum to one", ErrInvalidMotif, j)
    }
  }
  r.Values = values
  return r, nil
}

// One-hot encoding of a single k-mer.
func OneHotPWM(kmer Kmer) PWM {
  alphabet := NucleotideAlphabet{}
  values := make([][]float64, alphabet.Length())
  for i := 0; i < alphabet.Length(); i++ {
    values[i] = make([]float64, kmer.K())
  }
  for j := 0; j < kmer.K(); j++ {
    i, err := alphabet.Code(kmer[j])
    if err != nil {
      panic(err)
    }
    values[i][j] = 1.0
  }
  return PWM{values}
}

/* -------------------------------------------------------------------------- */

func (t PWM) Length() int {
  if len(t.Values) == 0 {
    return -1
  }
  return len(t.Values[0])
}

func (t PWM) Get(c byte, j int) float64 {
  i, err := NucleotideAlphabet{}.Code(c)
  if err != nil {
    panic(err)
  }
  return t.Values[i][j]
}

// Probability distribution at position j, indexed by nucleotide code.
func (t PWM) Column(j int) []float64 {
  r := make([]float64, len(t.Values))
  for i := 0; i < len(t.Values); i++ {
    r[i] = t.Values[i][j]
  }
  return r
}

func (t PWM) RevComp() PWM {
  alphabet := NucleotideAlphabet{}
  s := make([][]float64, alphabet.Length())
  for i := 0; i < alphabet.Length(); i++ {
    j, _ := alphabet.ComplementCoded(byte(i))
    s[j] = reverseFloat64(t.Values[i])
  }
  return PWM{s}
}

func (t PWM) Equals(b PWM, epsilon float64) bool {
  if t.Length() != b.Length() {
    return false
  }
  for i := 0; i < len(t.Values); i++ {
    for j := 0; j < t.Length(); j++ {
      if math.Abs(t.Values[i][j]-b.Values[i][j]) > epsilon {
        return false
      }
    }
  }
  return true
}

// Consensus sequence with the most probable nucleotide at every
// position. Ties are resolved in favor of the smaller nucleotide code.
func (t PWM) Consensus() string {
  alphabet := NucleotideAlphabet{}
  r := make([]byte, t.Length())
  for j := 0; j < t.Length(); j++ {
    code := byte(0)
    for i := 1; i < len(t.Values); i++ {
      if t.Values[i][j] > t.Values[code][j] {
        code = byte(i)
      }
    }
    c, err := alphabet.Decode(code)
    if err != nil {
      panic(err)
    }
    r[j] = c
  }
  return string(r)
}
