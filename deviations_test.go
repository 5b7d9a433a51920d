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

import "math"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestDeviations1(test *testing.T) {
  kmers   := KmerList{"aa", "cc", "gg"}
  samples := []string{"s1", "s2", "s3"}
  z       := [][]float64{
    {-2.0, 0.0, 2.0},
    { 1.0, 1.0, 1.0},
    {-1.0, 0.0, 1.0}}
  deviations, err := NewKmerDeviations(kmers, samples, z)
  if err != nil {
    test.Error("test failed"); return
  }
  if v := deviations.VariabilityAt(0); math.Abs(v-2.0) > 1e-12 {
    test.Error("test failed")
  }
  // constant deviations have zero variability
  if v := deviations.VariabilityAt(1); v != 0.0 {
    test.Error("test failed")
  }
  ranking := deviations.Variabilities()
  if ranking[0].Kmer != "aa" || ranking[1].Kmer != "gg" || ranking[2].Kmer != "cc" {
    test.Error("test failed")
  }
}

func TestDeviations2(test *testing.T) {
  kmers   := KmerList{"aa", "aa"}
  samples := []string{"s1"}
  z       := [][]float64{{1.0}, {2.0}}
  if _, err := NewKmerDeviations(kmers, samples, z); err == nil {
    test.Error("test failed")
  }
  kmers = KmerList{"aa", "ccc"}
  if _, err := NewKmerDeviations(kmers, samples, z); err == nil {
    test.Error("test failed")
  }
}

func TestDeviations3(test *testing.T) {
  table := "s1 s2 s3\n" +
           "acgtca -1.0 0.5 2.0\n" +
           "ttgaca  0.0 1.0 1.5\n"
  deviations, err := ReadKmerDeviations(strings.NewReader(table))
  if err != nil {
    test.Error("test failed"); return
  }
  if deviations.Len() != 2 || deviations.K() != 6 {
    test.Error("test failed")
  }
  if row, ok := deviations.Row("ttgaca"); !ok || row[2] != 1.5 {
    test.Error("test failed")
  }
}

/* -------------------------------------------------------------------------- */

func TestCovariances1(test *testing.T) {
  kmers   := KmerList{"aa", "cc", "gg"}
  samples := []string{"s1", "s2", "s3"}
  z       := [][]float64{
    {-2.0, 0.0, 2.0},
    { 2.0, 0.0,-2.0},
    { 1.0, 1.0, 1.0}}
  deviations, err := NewKmerDeviations(kmers, samples, z)
  if err != nil {
    test.Error("test failed"); return
  }
  covariances := ComputeKmerCovariances(deviations)
  if v, ok := covariances.Get("aa", "aa"); !ok || math.Abs(v-1.0) > 1e-12 {
    test.Error("test failed")
  }
  if v, ok := covariances.Get("aa", "cc"); !ok || math.Abs(v+1.0) > 1e-12 {
    test.Error("test failed")
  }
  // symmetry
  v1, _ := covariances.Get("aa", "cc")
  v2, _ := covariances.Get("cc", "aa")
  if v1 != v2 {
    test.Error("test failed")
  }
  // constant deviations have zero covariance with everything
  if v, ok := covariances.Get("gg", "aa"); !ok || v != 0.0 {
    test.Error("test failed")
  }
  if v, ok := covariances.Get("gg", "gg"); !ok || v != 0.0 {
    test.Error("test failed")
  }
  if _, ok := covariances.Get("tt", "aa"); ok {
    test.Error("test failed")
  }
}
