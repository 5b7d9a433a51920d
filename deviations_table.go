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

import "bufio"
import "fmt"
import "io"
import "strconv"
import "strings"

/* deviation tables
 * -------------------------------------------------------------------------- */

// Read a deviation table. The format is a whitespace separated table
// where the header lists the sample names and every following row
// contains a k-mer and one Z-score per sample.
func ReadKmerDeviations(reader io.Reader) (KmerDeviations, error) {
  r := KmerDeviations{}

  scanner := bufio.NewScanner(reader)

  samples := []string(nil)
  kmers   := KmerList{}
  z       := [][]float64{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    // if empty line, continue scanning
    if len(fields) == 0 {
      continue
    }
    // if first line, read sample names
    if samples == nil {
      samples = fields
      continue
    }
    if len(fields) != len(samples)+1 {
      return r, fmt.Errorf("ReadKmerDeviations(): invalid deviation table")
    }
    kmer, err := NewKmer(fields[0])
    if err != nil {
      return r, err
    }
    data := []float64{}
    for i := 1; i < len(fields); i++ {
      v, err := strconv.ParseFloat(fields[i], 64)
      if err != nil {
        return r, err
      }
      data = append(data, v)
    }
    kmers = append(kmers, kmer)
    z     = append(z,     data)
  }
  if err := scanner.Err(); err != nil {
    return r, err
  }
  if samples == nil {
    return r, fmt.Errorf("ReadKmerDeviations(): invalid deviation table")
  }
  return NewKmerDeviations(kmers, samples, z)
}

func ImportKmerDeviations(filename string) (KmerDeviations, error) {
  reader, closer, err := openReader(filename)
  if err != nil {
    return KmerDeviations{}, err
  }
  defer closer()

  return ReadKmerDeviations(reader)
}

/* -------------------------------------------------------------------------- */

func (obj KmerDeviations) WriteTable(writer io.Writer) error {
  w := bufio.NewWriter(writer)
  defer w.Flush()

  for i, name := range obj.Samples {
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
    for j := 0; j < len(obj.Samples); j++ {
      if _, err := fmt.Fprintf(w, " %e", obj.Z[i][j]); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func (obj KmerDeviations) ExportTable(filename string) error {
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
