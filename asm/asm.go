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

package asm

// LineSource supplies the assembler with one already-stripped source
// line at a time. Blank lines and comments must already be removed by
// the caller; Next returns ok=false once the source is exhausted.
type LineSource interface {
	Next() (line string, ok bool)
}

// Sink receives one encoded record per source line, in input order.
type Sink interface {
	Emit(rec Record)
}

// Assemble runs the full pipeline against a batch or interactive source:
// parse every line, run pass one to completion, then pass two, and
// forward each resulting record to sink. It aborts and returns the first
// fatal error encountered; no records are emitted for a failed run.
func Assemble(src LineSource, sink Sink) error {
	var lines []ParsedLine

	lineNo := 0
	for {
		raw, ok := src.Next()
		if !ok {
			break
		}
		lineNo++
		ln, err := ParseLine(lineNo, raw)
		if err != nil {
			return err
		}
		lines = append(lines, ln)
	}

	if len(lines) == 0 {
		return errorf("empty source program")
	}

	ctx := NewContext()
	if err := PassOne(ctx, lines); err != nil {
		return err
	}

	records, err := PassTwo(ctx, lines)
	if err != nil {
		return err
	}

	for _, rec := range records {
		sink.Emit(rec)
	}
	return nil
}
