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

//import "fmt"
import "testing"

/* -------------------------------------------------------------------------- */

func matchCount(matches KmerMatches, kmer Kmer, seqname string) int {
  i := -1
  j := -1
  for l, k := range matches.Kmers {
    if k == kmer {
      i = l
    }
  }
  for l, name := range matches.Seqnames {
    if name == seqname {
      j = l
    }
  }
  if i == -1 || j == -1 {
    return 0
  }
  return matches.At(i, j)
}

/* -------------------------------------------------------------------------- */

func TestKmerMatch1(test *testing.T) {
  sequences := StringSet{
    "peak1": []byte("ACGTACG"),
    "peak2": []byte("aaNcg")}

  matches := MatchKmers(sequences, 2, false)

  if len(matches.Seqnames) != 2 || matches.Seqnames[0] != "peak1" {
    test.Error("test failed")
  }
  if matchCount(matches, "ac", "peak1") != 2 {
    test.Error("test failed")
  }
  if matchCount(matches, "gt", "peak1") != 1 {
    test.Error("test failed")
  }
  // windows containing N are skipped
  if matchCount(matches, "aa", "peak2") != 1 {
    test.Error("test failed")
  }
  if matchCount(matches, "nc", "peak2") != 0 {
    test.Error("test failed")
  }
}

func TestKmerMatch2(test *testing.T) {
  sequences := StringSet{
    "peak1": []byte("aacg")}

  matches := MatchKmers(sequences, 2, true)

  // a k-mer and its reverse complement receive identical counts
  if matchCount(matches, "aa", "peak1") != matchCount(matches, "tt", "peak1") {
    test.Error("test failed")
  }
  if matchCount(matches, "ac", "peak1") != matchCount(matches, "gt", "peak1") {
    test.Error("test failed")
  }
}
