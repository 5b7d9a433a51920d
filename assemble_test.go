/* Copyright (C) 2024 The chromVAR-go authors
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
import "testing"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

func assemblerTestData() (KmerDeviations, KmerCovariances) {
  kmers   := KmerList{"attcca", "cattcc", "gggggg", "tttttt"}
  samples := []string{"s1", "s2"}
  z       := [][]float64{
    {-3.0, 3.0},
    {-4.0, 4.0},
    { 2.0,-2.0},
    {-2.0, 2.0}}
  deviations, err := NewKmerDeviations(kmers, samples, z)
  if err != nil {
    panic(err)
  }
  values := [][]float64{
    {1.0, 0.9, 0.0, 0.0},
    {0.9, 1.0, 0.0, 0.0},
    {0.0, 0.0, 1.0, 0.0},
    {0.0, 0.0, 0.0, 1.0}}
  covariances, err := NewKmerCovariances(kmers, values)
  if err != nil {
    panic(err)
  }
  return deviations, covariances
}

/* -------------------------------------------------------------------------- */

func TestAssembler1(test *testing.T) {
  pool := threadpool.New(1, 100)

  deviations, covariances := assemblerTestData()

  config := AssemblerConfig{}
  config.MinVariability = 1.0
  config.MinCovariance  = 0.5

  motifs, err := AssembleKmers(deviations, covariances, config, pool)
  if err != nil {
    test.Error("test failed"); return
  }
  if len(motifs) != 3 {
    test.Error("test failed"); return
  }
  // the two shifted k-mers merge into a single motif of width seven
  if motifs[0].Seed != "cattcc" {
    test.Error("test failed")
  }
  if !motifs[0].Members.Equals(KmerList{"cattcc", "attcca"}) {
    test.Error("test failed")
  }
  if !motifs[0].PWM.Equals(OneHotPWM("cattcca"), 1e-12) {
    test.Error("test failed")
  }
  // low-covariance k-mers become degenerate one-hot motifs; equal
  // variabilities are ranked lexically
  if motifs[1].Seed != "gggggg" || !motifs[1].PWM.Equals(OneHotPWM("gggggg"), 1e-12) {
    test.Error("test failed")
  }
  if motifs[2].Seed != "tttttt" || !motifs[2].PWM.Equals(OneHotPWM("tttttt"), 1e-12) {
    test.Error("test failed")
  }
}

func TestAssembler2(test *testing.T) {
  pool := threadpool.New(1, 100)

  deviations, covariances := assemblerTestData()

  config := AssemblerConfig{}
  config.MinVariability = 4.0
  config.MinCovariance  = 0.5

  // only the most variable k-mer may seed
  motifs, err := AssembleKmers(deviations, covariances, config, pool)
  if err != nil {
    test.Error("test failed"); return
  }
  if len(motifs) != 1 {
    test.Error("test failed"); return
  }
  if !motifs[0].Members.Equals(KmerList{"cattcc", "attcca"}) {
    test.Error("test failed")
  }
}

func TestAssembler3(test *testing.T) {
  pool := threadpool.New(2, 100)

  deviations, covariances := assemblerTestData()

  config := AssemblerConfig{}
  config.MinVariability = 1.0
  config.MinCovariance  = 0.5

  // identical inputs produce identical results
  motifs1, err := AssembleKmers(deviations, covariances, config, pool)
  if err != nil {
    test.Error("test failed"); return
  }
  motifs2, err := AssembleKmers(deviations, covariances, config, pool)
  if err != nil {
    test.Error("test failed"); return
  }
  if len(motifs1) != len(motifs2) {
    test.Error("test failed"); return
  }
  for i := 0; i < len(motifs1); i++ {
    if motifs1[i].Seed != motifs2[i].Seed {
      test.Error("test failed")
    }
    if !motifs1[i].Members.Equals(motifs2[i].Members) {
      test.Error("test failed")
    }
    if !motifs1[i].PWM.Equals(motifs2[i].PWM, 0.0) {
      test.Error("test failed")
    }
  }
}

func TestAssembler4(test *testing.T) {
  pool := threadpool.New(1, 100)

  deviations, _ := assemblerTestData()

  // covariance matrix missing one of the k-mers
  kmers  := KmerList{"attcca", "cattcc", "gggggg"}
  values := [][]float64{
    {1.0, 0.9, 0.0},
    {0.9, 1.0, 0.0},
    {0.0, 0.0, 1.0}}
  covariances, err := NewKmerCovariances(kmers, values)
  if err != nil {
    test.Error("test failed"); return
  }
  config := AssemblerConfig{}
  config.MinVariability = 1.0
  config.MinCovariance  = 0.5

  if _, err := AssembleKmers(deviations, covariances, config, pool); !errors.Is(err, ErrMissingCovariance) {
    test.Error("test failed")
  }
}

func TestAssembler5(test *testing.T) {
  pool := threadpool.New(1, 100)

  deviations, covariances := assemblerTestData()

  config := AssemblerConfig{}
  config.MinVariability = 1.0
  config.MinCovariance  = 0.5

  motifs, err := AssembleKmers(deviations, covariances, config, pool)
  if err != nil {
    test.Error("test failed"); return
  }
  // every k-mer above the seeding threshold is consumed exactly once
  seen := make(map[Kmer]int)
  for _, motif := range motifs {
    for _, kmer := range motif.Members {
      seen[kmer] += 1
    }
  }
  for _, kmer := range deviations.Kmers {
    if seen[kmer] != 1 {
      test.Error("test failed")
    }
  }
}
