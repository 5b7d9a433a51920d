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
import "sort"
import "strings"

/* -------------------------------------------------------------------------- */

// A k-mer is stored as a lower-case string over the nucleotide alphabet.
type Kmer string

/* -------------------------------------------------------------------------- */

func NewKmer(s string) (Kmer, error) {
  if len(s) == 0 {
    return "", fmt.Errorf("NewKmer(): empty k-mer")
  }
  alphabet := NucleotideAlphabet{}
  t := strings.ToLower(s)
  for i := 0; i < len(t); i++ {
    if _, err := alphabet.Code(t[i]); err != nil {
      return "", fmt.Errorf("NewKmer(): `%s' is not a valid k-mer", s)
    }
  }
  return Kmer(t), nil
}

/* -------------------------------------------------------------------------- */

func (obj Kmer) K() int {
  return len(obj)
}

func (obj Kmer) RevComp() Kmer {
  alphabet := NucleotideAlphabet{}
  s := []byte(obj)
  r := make([]byte, len(s))
  for i := 0; i < len(s); i++ {
    c, err := alphabet.Complement(s[i])
    if err != nil {
      panic(err)
    }
    r[len(s)-i-1] = c
  }
  return Kmer(r)
}

func (obj Kmer) String() string {
  return string(obj)
}

/* -------------------------------------------------------------------------- */

type KmerList []Kmer

func (obj KmerList) Len() int {
  return len(obj)
}

func (obj KmerList) Less(i, j int) bool {
  return obj[i] < obj[j]
}

func (obj KmerList) Swap(i, j int) {
  obj[i], obj[j] = obj[j], obj[i]
}

func (obj KmerList) Sort() {
  sort.Sort(obj)
}

func (obj KmerList) Clone() KmerList {
  r := make(KmerList, len(obj))
  copy(r, obj)
  return r
}

func (obj KmerList) Equals(b KmerList) bool {
  if len(obj) != len(b) {
    return false
  }
  for i := 0; i < len(obj); i++ {
    if obj[i] != b[i] {
      return false
    }
  }
  return true
}

/* -------------------------------------------------------------------------- */

// Call f for every valid k-mer window of the given sequence. Windows
// containing characters outside the nucleotide alphabet are skipped.
func ScanKmers(sequence []byte, k int, f func(Kmer)) {
  if k <= 0 {
    panic("ScanKmers(): invalid k-mer length")
  }
  c := []byte(strings.ToLower(string(sequence)))
  alphabet := NucleotideAlphabet{}
  for i := 0; i+k-1 < len(c); i++ {
    valid := true
    for j := i; j < i+k; j++ {
      if _, err := alphabet.Code(c[j]); err != nil {
        valid = false
        break
      }
    }
    if valid {
      f(Kmer(c[i:i+k]))
    }
  }
}
