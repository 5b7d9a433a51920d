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

import   "bufio"
import   "fmt"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/shamoni/chromVAR"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  MinOverlap int
  Threads    int
  Verbose    int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importCollection(config Config, filename string) PWMCollection {
  PrintStderr(config, 1, "Reading motifs `%s'... ", filename)
  collection, err := ImportPWMCollection(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return collection
}

/* -------------------------------------------------------------------------- */

func exportDistances(a, b PWMCollection, distances PWMDistances, filename string) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  w := bufio.NewWriter(f)
  defer w.Flush()

  fmt.Fprintf(w, "motif1 motif2 distance strand offset\n")
  for i := 0; i < a.Len(); i++ {
    for j := 0; j < b.Len(); j++ {
      alignment := distances.At(i, j)
      if alignment.Ok() {
        fmt.Fprintf(w, "%s %s %e %c %d\n", a.Names[i], b.Names[j], alignment.Distance, alignment.Strand, alignment.Offset)
      } else {
        fmt.Fprintf(w, "%s %s NA %c NA\n", a.Names[i], b.Names[j], alignment.Strand)
      }
    }
  }
  return nil
}

/* -------------------------------------------------------------------------- */

func pwmDistance(config Config, filenameA, filenameB, filenameOut string) {
  pool := threadpool.New(config.Threads, 100*config.Threads)
  a    := importCollection(config, filenameA)
  b    := importCollection(config, filenameB)

  PrintStderr(config, 1, "Computing %d distances... ", a.Len()*b.Len())
  distances, err := ComputePWMDistances(a.PWMs, b.PWMs, config.MinOverlap, pool)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  if err := exportDistances(a, b, distances, filenameOut); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optMinOverlap := options.    IntLong("min-overlap", 0 , 5, "minimum alignment overlap [default: 5]")
  optThreads    := options.    IntLong("threads",     0 , 1, "number of threads [default: 1]")
  optVerbose    := options.CounterLong("verbose",    'v',    "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",       'h',    "print help")

  options.SetParameters("<MOTIFS1.pwm> <MOTIFS2.pwm> <OUTPUT.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.MinOverlap = *optMinOverlap
  config.Threads    = *optThreads
  config.Verbose    = *optVerbose

  filenameA   := options.Args()[0]
  filenameB   := options.Args()[1]
  filenameOut := options.Args()[2]

  pwmDistance(config, filenameA, filenameB, filenameOut)
}
