// seehuhn.de/go/servicesheet - print blank service sheets as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Service-sheet writes a blank service sheet for "Les Entreprises Jessica
// Mikael Inc." to a PDF file.
//
// Usage:
//
//	service-sheet [-f] [-config file.yaml] [-check] [-o out.pdf] [out.pdf]
//
// The output file name "-" writes the PDF file to standard output.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"seehuhn.de/go/servicesheet/internal/buildinfo"
	"seehuhn.de/go/servicesheet/internal/config"
	"seehuhn.de/go/servicesheet/internal/inspect"
	"seehuhn.de/go/servicesheet/sheet"
)

const modPath = "seehuhn.de/go/servicesheet"

func main() {
	out := flag.String("o", "service_sheet_fr.pdf", "output file name")
	force := flag.Bool("f", false, "overwrite output file if it exists")
	configFile := flag.String("config", "", "read document metadata from this YAML file")
	check := flag.Bool("check", false, "read the output file back and print a summary")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(buildinfo.Producer(modPath))
		return
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "error: too many arguments")
		flag.Usage()
		os.Exit(1)
	}

	outSet := flag.NArg() == 1
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "o" {
			outSet = true
		}
	})
	if flag.NArg() == 1 {
		*out = flag.Arg(0)
	}

	args := &runArgs{
		out:        *out,
		outSet:     outSet,
		force:      *force,
		configFile: *configFile,
		check:      *check,
	}
	err := run(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type runArgs struct {
	out        string
	outSet     bool
	force      bool
	configFile string
	check      bool
}

func run(args *runArgs) error {
	opt := sheet.DefaultOptions()
	opt.Producer = buildinfo.Producer(modPath)
	opt.Date = time.Now()

	out := args.out
	if args.configFile != "" {
		cfg, err := config.Load(args.configFile)
		if err != nil {
			return err
		}
		cfg.Apply(opt)
		if cfg.Output != "" && !args.outSet {
			out = cfg.Output
		}
	}

	if out == "-" {
		if args.check {
			return errors.New("-check needs an output file")
		}
		buf := bufio.NewWriter(os.Stdout)
		err := sheet.Write(buf, opt)
		if err != nil {
			return err
		}
		return buf.Flush()
	}

	if !args.force {
		_, err := os.Stat(out)
		if err == nil {
			return fmt.Errorf("output file %q already exists (use -f to overwrite)", out)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	err := sheet.Render(out, opt)
	if err != nil {
		return err
	}

	if args.check {
		summary, err := inspect.File(out)
		if err != nil {
			return fmt.Errorf("%s: %w", out, err)
		}
		return summary.Format(os.Stdout)
	}
	return nil
}
