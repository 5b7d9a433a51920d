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
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// A named collection of position-weight matrices.
type PWMCollection struct {
  Names []string
  PWMs  []PWM
}

/* -------------------------------------------------------------------------- */

func (obj PWMCollection) Len() int {
  return len(obj.PWMs)
}

func (obj *PWMCollection) Append(name string, pwm PWM) {
  obj.Names = append(obj.Names, name)
  obj.PWMs  = append(obj.PWMs,  pwm)
}

/* collection files
 * -------------------------------------------------------------------------- */

// Read a collection of PWMs. Every record starts with a `>name' line
// followed by one row per nucleotide, where the first column carries
// the nucleotide.
func ReadPWMCollection(reader io.Reader) (PWMCollection, error) {
  r := PWMCollection{}

  scanner  := bufio.NewScanner(reader)
  alphabet := NucleotideAlphabet{}

  name   := ""
  values := [][]float64(nil)
  nrows  := 0

  flush := func() error {
    if name == "" {
      return nil
    }
    if nrows != alphabet.Length() {
      return fmt.Errorf("ReadPWMCollection(): record `%s' is missing rows", name)
    }
    pwm, err := NewPWM(values)
    if err != nil {
      return err
    }
    r.Append(name, pwm)
    return nil
  }
  for scanner.Scan() {
    line := scanner.Text()
    if len(strings.TrimSpace(line)) == 0 {
      continue
    }
    if line[0] == '>' {
      if err := flush(); err != nil {
        return r, err
      }
      name   = strings.TrimSpace(line[1:])
      values = make([][]float64, alphabet.Length())
      nrows  = 0
      if name == "" {
        return r, fmt.Errorf("ReadPWMCollection(): record without name")
      }
      continue
    }
    if name == "" {
      return r, fmt.Errorf("ReadPWMCollection(): data before first record")
    }
    fields := strings.Fields(line)
    if len(fields) <= 1 {
      return r, fmt.Errorf("ReadPWMCollection(): invalid record `%s'", name)
    }
    data := []float64{}
    for i := 1; i < len(fields); i++ {
      v, err := strconv.ParseFloat(fields[i], 64)
      if err != nil {
        return r, err
      }
      data = append(data, v)
    }
    i, err := alphabet.Code(fields[0][0])
    if err != nil {
      return r, err
    }
    values[i] = data
    nrows++
  }
  if err := scanner.Err(); err != nil {
    return r, err
  }
  if err := flush(); err != nil {
    return r, err
  }
  return r, nil
}

func ImportPWMCollection(filename string) (PWMCollection, error) {
  reader, closer, err := openReader(filename)
  if err != nil {
    return PWMCollection{}, err
  }
  defer closer()

  return ReadPWMCollection(reader)
}

/* -------------------------------------------------------------------------- */

func (obj PWMCollection) WriteCollection(writer io.Writer) error {
  w := bufio.NewWriter(writer)
  defer w.Flush()

  for i := 0; i < obj.Len(); i++ {
    if _, err := fmt.Fprintf(w, ">%s\n", obj.Names[i]); err != nil {
      return err
    }
    if err := obj.PWMs[i].WriteMatrix(w); err != nil {
      return err
    }
  }
  return nil
}

func (obj PWMCollection) ExportCollection(filename string) error {
  writer, closer, err := openWriter(filename)
  if err != nil {
    return err
  }
  if err := obj.WriteCollection(writer); err != nil {
    closer()
    return err
  }
  return closer()
}
