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

// Package sink adapts an io.Writer into the asm.Sink collaborator,
// rendering each record as one line of text.
package sink

import (
	"fmt"
	"io"

	"github.com/d1ndonlymdhe/sic-xe/asm"
	"github.com/pkg/errors"
)

// Writer renders asm.Record values to an underlying io.Writer, one line
// per record, and tracks the first write error so the caller need not
// check every individual Emit call.
type Writer struct {
	w   io.Writer
	Err error
}

// NewWriter returns a Writer wrapping w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Emit implements asm.Sink. Once Err is set, subsequent calls are no-ops.
func (s *Writer) Emit(rec asm.Record) {
	if s.Err != nil {
		return
	}
	var line string
	if rec.Empty {
		line = fmt.Sprintf("%d:\n", rec.LineNo)
	} else {
		line = fmt.Sprintf("%d: %s\n", rec.LineNo, rec.Code)
	}
	if _, err := io.WriteString(s.w, line); err != nil {
		s.Err = errors.Wrap(err, "write failed")
	}
}
