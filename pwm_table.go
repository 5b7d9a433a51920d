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

/* single matrix tables
 * -------------------------------------------------------------------------- */

// Read a single PWM from a whitespace separated table with one row per
// nucleotide, where the first column carries the nucleotide.
func ReadPWM(reader io.Reader) (PWM, error) {

  scanner  := bufio.NewScanner(reader)
  alphabet := NucleotideAlphabet{}

  ncols  := -1
  values := make([][]float64, alphabet.Length())

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    // if empty line, continue scanning
    if len(fields) == 0 {
      continue
    }
    if len(fields) <= 1 {
      return PWM{}, fmt.Errorf("ReadPWM(): invalid matrix")
    }
    // if first line, set number of columns
    if ncols == -1 {
      ncols = len(fields)-1
    }
    if len(fields) != ncols+1 {
      return PWM{}, fmt.Errorf("ReadPWM(): invalid matrix")
    }
    data := []float64{}
    // read one row of the matrix
    for i := 1; i < len(fields); i++ {
      v, err := strconv.ParseFloat(fields[i], 64)
      if err != nil {
        return PWM{}, err
      }
      data = append(data, v)
    }
    i, err := alphabet.Code(fields[0][0])
    if err != nil {
      return PWM{}, err
    }
    values[i] = data
  }
  if err := scanner.Err(); err != nil {
    return PWM{}, err
  }
  return NewPWM(values)
}

func ImportPWM(filename string) (PWM, error) {
  reader, closer, err := openReader(filename)
  if err != nil {
    return PWM{}, err
  }
  defer closer()

  return ReadPWM(reader)
}

/* -------------------------------------------------------------------------- */

func (t PWM) WriteMatrix(writer io.Writer) error {
  w := bufio.NewWriter(writer)
  defer w.Flush()

  alphabet := NucleotideAlphabet{}

  for i := 0; i < alphabet.Length(); i++ {
    c, err := alphabet.Decode(byte(i))
    if err != nil {
      panic(err)
    }
    if _, err := fmt.Fprintf(w, "%c", c); err != nil {
      return err
    }
    for j := 0; j < t.Length(); j++ {
      if _, err := fmt.Fprintf(w, " %f", t.Values[i][j]); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func (t PWM) ExportMatrix(filename string) error {
  writer, closer, err := openWriter(filename)
  if err != nil {
    return err
  }
  if err := t.WriteMatrix(writer); err != nil {
    closer()
    return err
  }
  return closer()
}
