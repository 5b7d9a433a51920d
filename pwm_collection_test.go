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

import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestPWMCollection1(test *testing.T) {
  data := ">motif_1\n" +
          "a 1.0 0.0\n" +
          "c 0.0 0.5\n" +
          "g 0.0 0.5\n" +
          "t 0.0 0.0\n" +
          ">motif_2\n" +
          "a 0.25\n" +
          "c 0.25\n" +
          "g 0.25\n" +
          "t 0.25\n"
  collection, err := ReadPWMCollection(strings.NewReader(data))
  if err != nil {
    test.Error("test failed"); return
  }
  if collection.Len() != 2 {
    test.Error("test failed"); return
  }
  if collection.Names[0] != "motif_1" || collection.Names[1] != "motif_2" {
    test.Error("test failed")
  }
  if collection.PWMs[0].Length() != 2 || collection.PWMs[1].Length() != 1 {
    test.Error("test failed")
  }
  if collection.PWMs[0].Get('c', 1) != 0.5 {
    test.Error("test failed")
  }
}

func TestPWMCollection2(test *testing.T) {
  // a record with a column not summing to one is rejected
  data := ">motif_1\n" +
          "a 0.5\n" +
          "c 0.5\n" +
          "g 0.5\n" +
          "t 0.0\n"
  if _, err := ReadPWMCollection(strings.NewReader(data)); err == nil {
    test.Error("test failed")
  }
}
