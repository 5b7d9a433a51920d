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
import   "strconv"

import   "github.com/pborman/getopt"

import . "github.com/shamoni/chromVAR"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  Assembler AssemblerConfig
  Threads   int
  Verbose   int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importDeviations(config Config, filename string) KmerDeviations {
  PrintStderr(config, 1, "Reading deviations `%s'... ", filename)
  deviations, err := ImportKmerDeviations(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return deviations
}

/* -------------------------------------------------------------------------- */

func kmerAssemble(config Config, filenameIn, filenameOut string) {
  pool       := threadpool.New(config.Threads, 100*config.Threads)
  deviations := importDeviations(config, filenameIn)

  PrintStderr(config, 1, "Computing covariances... ")
  covariances := ComputeKmerCovariances(deviations)
  PrintStderr(config, 1, "done\n")

  motifs, err := AssembleKmers(deviations, covariances, config.Assembler, pool)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Assembled %d motifs\n", len(motifs))

  collection := PWMCollection{}
  for i, motif := range motifs {
    collection.Append(fmt.Sprintf("motif_%d_%s", i+1, motif.Consensus()), motif.PWM)
  }
  PrintStderr(config, 1, "Writing motifs to `%s'... ", filenameOut)
  if err := collection.ExportCollection(filenameOut); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  config.Assembler = DefaultAssemblerConfig()
  options := getopt.New()

  optMinVariability := options. StringLong("min-variability", 0 , "1.5", "minimum seed variability [default: 1.5]")
  optMinCovariance  := options. StringLong("min-covariance",  0 , "0.7", "minimum covariance with the seed [default: 0.7]")
  optMinOverlap     := options.    IntLong("min-overlap",     0 ,     0, "minimum alignment overlap [default: k-2]")
  optThreads        := options.    IntLong("threads",         0 ,     1, "number of threads [default: 1]")
  optVerbose        := options.CounterLong("verbose",        'v',        "verbose level [-v or -vv]")
  optHelp           := options.   BoolLong("help",           'h',        "print help")

  options.SetParameters("<DEVIATIONS.table> <MOTIFS.pwm>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if v, err := strconv.ParseFloat(*optMinVariability, 64); err != nil {
    log.Fatal(err)
  } else {
    config.Assembler.MinVariability = v
  }
  if v, err := strconv.ParseFloat(*optMinCovariance, 64); err != nil {
    log.Fatal(err)
  } else {
    config.Assembler.MinCovariance = v
  }
  config.Assembler.MinOverlap = *optMinOverlap
  config.Threads              = *optThreads
  config.Verbose              = *optVerbose
  config.Assembler.Progress   = config.Verbose > 0

  filenameIn  := options.Args()[0]
  filenameOut := options.Args()[1]

  kmerAssemble(config, filenameIn, filenameOut)
}
