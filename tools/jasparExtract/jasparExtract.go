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
  Collection string
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

func jasparExtract(config Config, dsn, filenameOut string) {
  PrintStderr(config, 1, "Importing collection `%s'... ", config.Collection)
  collection, err := ImportPWMCollectionFromJaspar(dsn, config.Collection)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  PrintStderr(config, 1, "Imported %d motifs\n", collection.Len())

  if err := collection.ExportCollection(filenameOut); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optCollection := options. StringLong("collection", 0 , "CORE", "JASPAR collection [default: CORE]")
  optVerbose    := options.CounterLong("verbose",   'v',         "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",      'h',         "print help")

  options.SetParameters("<DSN> <OUTPUT.pwm>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Collection = *optCollection
  config.Verbose    = *optVerbose

  jasparExtract(config, options.Args()[0], options.Args()[1])
}
