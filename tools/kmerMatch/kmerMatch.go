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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/shamoni/chromVAR"

/* -------------------------------------------------------------------------- */

type Config struct {
  K           int
  BothStrands bool
  Verbose     int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func kmerMatch(config Config, filenameIn, filenameOut string) {
  sequences := EmptyStringSet()
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filenameIn)
  if err := sequences.ImportFasta(filenameIn); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  PrintStderr(config, 1, "Counting %d-mers in %d sequences... ", config.K, len(sequences))
  matches := MatchKmers(sequences, config.K, config.BothStrands)
  PrintStderr(config, 1, "done\n")

  PrintStderr(config, 1, "Writing counts to `%s'... ", filenameOut)
  if err := matches.ExportTable(filenameOut); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optK           := options.    IntLong("kmer-length",  'k', 6, "k-mer length [default: 6]")
  optBothStrands := options.   BoolLong("both-strands",  0 ,    "count k-mers on both strands")
  optVerbose     := options.CounterLong("verbose",      'v',    "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",         'h',    "print help")

  options.SetParameters("<PEAKS.fa> <OUTPUT.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optK < 1 {
    log.Fatal("invalid k-mer length")
  }
  config.K           = *optK
  config.BothStrands = *optBothStrands
  config.Verbose     = *optVerbose

  kmerMatch(config, options.Args()[0], options.Args()[1])
}
