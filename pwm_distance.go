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

import "math"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

const (
  StrandForward byte = '+'
  StrandReverse byte = '-'
  StrandNone    byte = '*'
)

/* -------------------------------------------------------------------------- */

// Best alignment of two position-weight matrices. The offset shifts the
// second matrix relative to the first one, i.e. position j of the first
// matrix is compared with position j-Offset of the second. On the
// reverse strand the offset refers to the reverse-complemented second
// matrix. If no offset yields a sufficient overlap, the alignment is
// reported with an infinite distance and no strand.
type PWMAlignment struct {
  Distance float64
  Strand   byte
  Offset   int
}

func (obj PWMAlignment) Ok() bool {
  return obj.Strand != StrandNone
}

/* -------------------------------------------------------------------------- */

// Mean Euclidean distance between the overlapping columns of a and b,
// where b is shifted by the given offset. The caller must ensure that
// the overlap is not empty.
func pwmDistanceAt(a, b PWM, offset int) float64 {
  from := iMax(0, offset)
  to   := iMin(a.Length(), offset+b.Length())
  sum  := 0.0
  for j := from; j < to; j++ {
    d := 0.0
    for i := 0; i < len(a.Values); i++ {
      v := a.Values[i][j]-b.Values[i][j-offset]
      d += v*v
    }
    sum += math.Sqrt(d)
  }
  return sum/float64(to-from)
}

// On exact ties the forward strand wins, then the smaller absolute
// offset, then the smaller offset.
func (obj PWMAlignment) better(b PWMAlignment) bool {
  if obj.Distance != b.Distance {
    return obj.Distance < b.Distance
  }
  if obj.Strand != b.Strand {
    return obj.Strand == StrandForward
  }
  if iAbs(obj.Offset) != iAbs(b.Offset) {
    return iAbs(obj.Offset) < iAbs(b.Offset)
  }
  return obj.Offset < b.Offset
}

/* -------------------------------------------------------------------------- */

// Find the orientation and offset of b relative to a minimizing the
// mean per-position distance between the two matrices. Only offsets
// where the matrices overlap by at least minOverlap positions are
// considered.
func PWMDistance(a, b PWM, minOverlap int) PWMAlignment {
  if minOverlap < 1 {
    minOverlap = 1
  }
  result := PWMAlignment{math.Inf(1), StrandNone, 0}

  if a.Length() < minOverlap || b.Length() < minOverlap {
    return result
  }
  c := b.RevComp()
  for offset := -(b.Length()-minOverlap); offset <= a.Length()-minOverlap; offset++ {
    if r := (PWMAlignment{pwmDistanceAt(a, b, offset), StrandForward, offset}); r.better(result) {
      result = r
    }
    if r := (PWMAlignment{pwmDistanceAt(a, c, offset), StrandReverse, offset}); r.better(result) {
      result = r
    }
  }
  return result
}

/* -------------------------------------------------------------------------- */

// Pairwise alignments between two motif collections, stored as three
// parallel matrices.
type PWMDistances struct {
  Distances [][]float64
  Strands   [][]byte
  Offsets   [][]int
}

func (obj PWMDistances) At(i, j int) PWMAlignment {
  return PWMAlignment{obj.Distances[i][j], obj.Strands[i][j], obj.Offsets[i][j]}
}

/* -------------------------------------------------------------------------- */

// Compute the best alignment for every pair of matrices from a and b.
// Pairs are distributed over the given thread pool.
func ComputePWMDistances(a, b []PWM, minOverlap int, pool threadpool.ThreadPool) (PWMDistances, error) {
  m := len(a)
  n := len(b)
  r := PWMDistances{}
  r.Distances = make([][]float64, m)
  r.Strands   = make([][]byte,    m)
  r.Offsets   = make([][]int,     m)
  for i := 0; i < m; i++ {
    r.Distances[i] = make([]float64, n)
    r.Strands  [i] = make([]byte,    n)
    r.Offsets  [i] = make([]int,     n)
  }
  jobGroup := pool.NewJobGroup()

  if err := pool.AddRangeJob(0, m*n, jobGroup, func(k int, pool threadpool.ThreadPool, erf func() error) error {
    i := k/n
    j := k%n
    alignment := PWMDistance(a[i], b[j], minOverlap)
    r.Distances[i][j] = alignment.Distance
    r.Strands  [i][j] = alignment.Strand
    r.Offsets  [i][j] = alignment.Offset
    return nil
  }); err != nil {
    return r, err
  }
  if err := pool.Wait(jobGroup); err != nil {
    return r, err
  }
  return r, nil
}
