// This file is part of ngaro - https://github.com/db47h/ngaro
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/d1ndonlymdhe/sic-xe/asm"
	"github.com/d1ndonlymdhe/sic-xe/internal/config"
	"github.com/d1ndonlymdhe/sic-xe/internal/sink"
	"github.com/pkg/errors"
)

func atExit(cfg *config.Config, err error) {
	if err == nil {
		return
	}
	if cfg != nil && cfg.Diagnostics.Verbose {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}

func main() {
	configPath := flag.String("config", "sicxe.toml", "path to an optional TOML config file")
	dump := flag.Bool("dump", false, "print the label table after a successful assembly")
	interactive := flag.Bool("i", false, "read source lines from an interactive prompt instead of a file")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		atExit(nil, err)
		return
	}

	args := flag.Args()
	if (*interactive && len(args) != 0) || (!*interactive && len(args) != 1) {
		atExit(cfg, errors.Errorf("usage: %s <filename> | -i", os.Args[0]))
		return
	}

	var src asm.LineSource
	var closer func() error

	if *interactive {
		inter := newInteractiveSource(os.Stdin, os.Stdout)
		inter.collect()
		src = inter
	} else {
		f, openErr := os.Open(args[0])
		if openErr != nil {
			atExit(cfg, errors.Wrap(openErr, "opening source file"))
			return
		}
		defer f.Close()
		batch := newBatchSource(f)
		src = batch
		closer = batch.err
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	out := sink.NewWriter(stdout)
	assembleAndDump(src, out, cfg, *dump)

	if closer != nil {
		if cerr := closer(); cerr != nil {
			atExit(cfg, cerr)
			return
		}
	}
	if out.Err != nil {
		atExit(cfg, out.Err)
		return
	}
}

// assembleAndDump runs the pipeline directly (rather than through
// asm.Assemble) so the CLI can keep the Context around for an optional
// -dump pass; it reports fatal errors through atExit itself.
func assembleAndDump(src asm.LineSource, out *sink.Writer, cfg *config.Config, dump bool) {
	var lines []asm.ParsedLine
	lineNo := 0
	for {
		raw, ok := src.Next()
		if !ok {
			break
		}
		lineNo++
		ln, err := asm.ParseLine(lineNo, raw)
		if err != nil {
			atExit(cfg, err)
			return
		}
		lines = append(lines, ln)
	}

	if len(lines) == 0 {
		atExit(cfg, errors.New("empty source program"))
		return
	}

	ctx := asm.NewContext()
	if err := asm.PassOne(ctx, lines); err != nil {
		atExit(cfg, err)
		return
	}

	records, err := asm.PassTwo(ctx, lines)
	if err != nil {
		atExit(cfg, err)
		return
	}

	for _, rec := range records {
		if rec.Empty && !cfg.Listing.ShowEmptyRecords {
			continue
		}
		out.Emit(rec)
	}

	if dump {
		if err := dumpSymbols(ctx, os.Stdout); err != nil {
			atExit(cfg, err)
			return
		}
	}
}
