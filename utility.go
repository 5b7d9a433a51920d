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

import "compress/gzip"
import "io"
import "os"
import "strings"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

func iAbs(a int) int {
  if a < 0 {
    return -a
  } else {
    return a
  }
}

/* -------------------------------------------------------------------------- */

func reverseFloat64(x []float64) []float64 {
  y := make([]float64, len(x))
  for i := 0; i < len(x); i++ {
    y[len(x)-i-1] = x[i]
  }
  return y
}

/* -------------------------------------------------------------------------- */

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

// Open a possibly gzip-compressed file for reading. The caller must
// call the returned closer when done.
func openReader(filename string) (io.Reader, func() error, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, nil, err
  }
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      f.Close()
      return nil, nil, err
    }
    closer := func() error {
      g.Close()
      return f.Close()
    }
    return g, closer, nil
  }
  return f, f.Close, nil
}

// Create a file for writing. If the filename ends in `.gz' the output
// is gzip-compressed.
func openWriter(filename string) (io.Writer, func() error, error) {
  f, err := os.Create(filename)
  if err != nil {
    return nil, nil, err
  }
  if strings.HasSuffix(filename, ".gz") {
    g := gzip.NewWriter(f)
    closer := func() error {
      g.Close()
      return f.Close()
    }
    return g, closer, nil
  }
  return f, f.Close, nil
}
