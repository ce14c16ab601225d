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

package asm_test

import (
	"testing"

	"github.com/d1ndonlymdhe/sic-xe/asm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	lines []string
	pos   int
}

func (s *sliceSource) Next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.pos]
	s.pos++
	return line, true
}

type recordSink struct {
	records []asm.Record
}

func (s *recordSink) Emit(rec asm.Record) {
	s.records = append(s.records, rec)
}

func TestAssembleEndToEnd(t *testing.T) {
	src := &sliceSource{lines: []string{
		"FIRST START 1000",
		"      LDA   2",
		"      END   FIRST",
	}}
	sink := &recordSink{}

	require.NoError(t, asm.Assemble(src, sink))
	require.Len(t, sink.records, 3)
	assert.Equal(t, "032C17", sink.records[1].Code)
}

func TestAssembleRejectsEmptySource(t *testing.T) {
	src := &sliceSource{}
	sink := &recordSink{}
	assert.Error(t, asm.Assemble(src, sink))
}

func TestAssembleAbortsOnFirstFatalError(t *testing.T) {
	src := &sliceSource{lines: []string{
		"FIRST START 1000",
		"      FROB  2",
	}}
	sink := &recordSink{}

	err := asm.Assemble(src, sink)
	assert.Error(t, err)
	assert.Empty(t, sink.records, "no partial output on a fatal error")
}
