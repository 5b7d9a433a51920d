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

import "bufio"
import "fmt"
import "io"

/* -------------------------------------------------------------------------- */

// K-mer occurrence counts over a set of sequences. Rows are k-mers,
// columns are sequences in the order of the sequence name list. This is
// the annotation membership input consumed by an external deviation
// computation.
type KmerMatches struct {
  Kmers    KmerList
  Seqnames []string
  Counts   [][]int
}

/* -------------------------------------------------------------------------- */

// Count all k-mer occurrences in the given sequences. With bothStrands
// every occurrence is also attributed to the reverse complement of the
// observed k-mer, so that a k-mer and its reverse complement receive
// identical counts. Palindromic k-mers are counted twice in this case.
func MatchKmers(sequences StringSet, k int, bothStrands bool) KmerMatches {
  seqnames := sequences.Seqnames()
  counts   := make([]map[Kmer]int, len(seqnames))

  for i, name := range seqnames {
    counts[i] = make(map[Kmer]int)
    ScanKmers(sequences[name], k, func(kmer Kmer) {
      counts[i][kmer] += 1
      if bothStrands {
        counts[i][kmer.RevComp()] += 1
      }
    })
  }
  // collect all observed k-mers
  kmers := KmerList{}
  m     := make(map[Kmer]bool)
  for i := 0; i < len(seqnames); i++ {
    for kmer, _ := range counts[i] {
      if !m[kmer] {
        m[kmer] = true
        kmers = append(kmers, kmer)
      }
    }
  }
  kmers.Sort()

  r := KmerMatches{}
  r.Kmers    = kmers
  r.Seqnames = seqnames
  r.Counts   = make([][]int, len(kmers))
  for i, kmer := range kmers {
    r.Counts[i] = make([]int, len(seqnames))
    for j := 0; j < len(seqnames); j++ {
      r.Counts[i][j] = counts[j][kmer]
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

func (obj KmerMatches) Len() int {
  return len(obj.Kmers)
}

func (obj KmerMatches) At(i, j int) int {
  return obj.Counts[i][j]
}

/* -------------------------------------------------------------------------- */

func (obj KmerMatches) WriteTable(writer io.Writer) error {
  w := bufio.NewWriter(writer)
  defer w.Flush()

  for i, name := range obj.Seqnames {
    if i != 0 {
      if _, err := fmt.Fprintf(w, " "); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(w, "%s", name); err != nil {
      return err
    }
  }
  if _, err := fmt.Fprintf(w, "\n"); err != nil {
    return err
  }
  for i := 0; i < obj.Len(); i++ {
    if _, err := fmt.Fprintf(w, "%s", obj.Kmers[i]); err != nil {
      return err
    }
    for j := 0; j < len(obj.Seqnames); j++ {
      if _, err := fmt.Fprintf(w, " %d", obj.Counts[i][j]); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func (obj KmerMatches) ExportTable(filename string) error {
  writer, closer, err := openWriter(filename)
  if err != nil {
    return err
  }
  if err := obj.WriteTable(writer); err != nil {
    closer()
    return err
  }
  return closer()
}
