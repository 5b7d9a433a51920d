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

import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestStringSet1(test *testing.T) {
  data := ">peak1 chr1:100-200\n" +
          "ACGT\n" +
          "ACGT\n" +
          ">peak2\n" +
          "TTTT\n"
  s := EmptyStringSet()
  if err := s.ReadFasta(strings.NewReader(data)); err != nil {
    test.Error("test failed"); return
  }
  if len(s) != 2 {
    test.Error("test failed")
  }
  if string(s["peak1"]) != "ACGTACGT" {
    test.Error("test failed")
  }
  if string(s["peak2"]) != "TTTT" {
    test.Error("test failed")
  }
  names := s.Seqnames()
  if len(names) != 2 || names[0] != "peak1" || names[1] != "peak2" {
    test.Error("test failed")
  }
}
