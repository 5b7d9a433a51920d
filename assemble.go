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
import "fmt"

import "github.com/pbenner/threadpool"

import "github.com/shamoni/chromVAR/lib/progress"

/* -------------------------------------------------------------------------- */

var ErrMissingCovariance = errors.New("incomplete covariance data")

/* -------------------------------------------------------------------------- */

type AssemblerConfig struct {
  // minimum variability for a k-mer to seed a new motif
  MinVariability float64
  // minimum normalized covariance with the seed for a k-mer to
  // contribute to the seed's motif
  MinCovariance  float64
  // minimum number of overlapping positions when aligning a k-mer
  // against the seed; values below one default to k-2
  MinOverlap     int
  // print a progress bar to stderr; has no effect on the result
  Progress       bool
}

func DefaultAssemblerConfig() AssemblerConfig {
  config := AssemblerConfig{}
  config.MinVariability = 1.5
  config.MinCovariance  = 0.7
  config.MinOverlap     = 0
  return config
}

/* -------------------------------------------------------------------------- */

// A motif assembled from a seed k-mer and its covarying neighbors. The
// member list contains the seed and every aligned neighbor.
type AssembledMotif struct {
  PWM
  Seed    Kmer
  Members KmerList
}

/* -------------------------------------------------------------------------- */

type kmerContribution struct {
  kmer      Kmer
  weight    float64
  alignment PWMAlignment
}

/* -------------------------------------------------------------------------- */

// Align every candidate against the seed. Alignments are computed on
// the thread pool; the result order is fixed by the candidate order.
func alignCandidates(seed Kmer, candidates []kmerContribution, minOverlap int, pool threadpool.ThreadPool) error {
  seedPwm  := OneHotPWM(seed)
  jobGroup := pool.NewJobGroup()

  if err := pool.AddRangeJob(0, len(candidates), jobGroup, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    candidates[i].alignment = PWMDistance(seedPwm, OneHotPWM(candidates[i].kmer), minOverlap)
    return nil
  }); err != nil {
    return err
  }
  return pool.Wait(jobGroup)
}

/* -------------------------------------------------------------------------- */

// Aggregate the seed and its aligned neighbors into a single PWM. At
// every aligned position the nucleotide weight accumulates linearly in
// the contributor's covariance with the seed; columns are normalized at
// the end.
func aggregateMotif(seed Kmer, seedWeight float64, contributions []kmerContribution) (PWM, error) {
  k    := seed.K()
  from := 0
  to   := k
  for _, c := range contributions {
    from = iMin(from, c.alignment.Offset)
    to   = iMax(to,   c.alignment.Offset+k)
  }
  alphabet := NucleotideAlphabet{}
  weights  := make([][]float64, alphabet.Length())
  for i := 0; i < alphabet.Length(); i++ {
    weights[i] = make([]float64, to-from)
  }
  add := func(kmer Kmer, offset int, weight float64) {
    for p := 0; p < k; p++ {
      i, err := alphabet.Code(kmer[p])
      if err != nil {
        panic(err)
      }
      weights[i][offset-from+p] += weight
    }
  }
  add(seed, 0, seedWeight)
  for _, c := range contributions {
    if c.alignment.Strand == StrandReverse {
      add(c.kmer.RevComp(), c.alignment.Offset, c.weight)
    } else {
      add(c.kmer, c.alignment.Offset, c.weight)
    }
  }
  // every column overlaps at least one contributor, so that no column
  // sum can be zero here
  for j := 0; j < to-from; j++ {
    sum := 0.0
    for i := 0; i < alphabet.Length(); i++ {
      sum += weights[i][j]
    }
    for i := 0; i < alphabet.Length(); i++ {
      weights[i][j] /= sum
    }
  }
  return NewPWM(weights)
}

/* -------------------------------------------------------------------------- */

// Assemble de novo motifs from k-mer deviations. K-mers are seeded in
// order of decreasing variability; for every seed, all unconsumed
// k-mers covarying with the seed are aligned against it and aggregated
// into a PWM. Consumed k-mers are never reseeded. The result is
// deterministic for identical inputs.
func AssembleKmers(deviations KmerDeviations, covariances KmerCovariances, config AssemblerConfig, pool threadpool.ThreadPool) ([]AssembledMotif, error) {
  k := deviations.K()

  minOverlap := config.MinOverlap
  if minOverlap < 1 {
    minOverlap = iMax(1, k-2)
  }
  ranking := deviations.Variabilities()
  used    := make(map[Kmer]bool)
  result  := []AssembledMotif{}
  bar     := progress.New(len(ranking), 20)

  for i, entry := range ranking {
    if config.Progress {
      bar.PrintStderr(i)
    }
    if entry.Value <= config.MinVariability {
      break
    }
    if used[entry.Kmer] {
      continue
    }
    seed := entry.Kmer
    seedWeight, ok := covariances.Get(seed, seed)
    if !ok {
      return nil, fmt.Errorf("AssembleKmers(): %w: covariance of `%s' with itself is missing", ErrMissingCovariance, seed)
    }
    // a seed with vanishing self-covariance still defines a one-hot
    // motif
    if seedWeight <= 0.0 {
      seedWeight = 1.0
    }
    // collect unconsumed k-mers covarying with the seed
    candidates := []kmerContribution{}
    for _, kmer := range deviations.Kmers {
      if kmer == seed || used[kmer] {
        continue
      }
      c, ok := covariances.Get(seed, kmer)
      if !ok {
        return nil, fmt.Errorf("AssembleKmers(): %w: covariance of `%s' and `%s' is missing", ErrMissingCovariance, seed, kmer)
      }
      // only positively covarying k-mers contribute weight
      if c < config.MinCovariance || c <= 0.0 {
        continue
      }
      candidates = append(candidates, kmerContribution{kmer: kmer, weight: c})
    }
    if err := alignCandidates(seed, candidates, minOverlap, pool); err != nil {
      return nil, err
    }
    // k-mers without a valid alignment are left for later seeding
    contributions := []kmerContribution{}
    for _, c := range candidates {
      if c.alignment.Ok() {
        contributions = append(contributions, c)
      }
    }
    pwm, err := aggregateMotif(seed, seedWeight, contributions)
    if err != nil {
      return nil, err
    }
    members := KmerList{seed}
    used[seed] = true
    for _, c := range contributions {
      members    = append(members, c.kmer)
      used[c.kmer] = true
    }
    result = append(result, AssembledMotif{PWM: pwm, Seed: seed, Members: members})
  }
  if config.Progress {
    bar.PrintStderr(len(ranking))
  }
  return result, nil
}
