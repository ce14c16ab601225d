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

// Package asm implements a two-pass assembler for the SIC/XE instruction
// set. Given a sequence of already-stripped source lines, it produces
// one hexadecimal object-code record per line.
//
// The pipeline is ParseLine, then PassOne, then PassTwo: pass one walks
// the parsed lines to resolve every label and literal to an absolute
// address, and pass two walks them again, read-only against the
// resulting Context, to choose an addressing form and pack each
// instruction's object code.
//
// Callers drive the pipeline through Assemble, supplying a LineSource
// and a Sink; both collaborators live outside this package (a file
// reader, an interactive prompt, a terminal writer).
//
// This package does not link or load object programs, evaluate operand
// expressions beyond the forms in the source grammar, or emit the
// conventional H/T/E object-program record format: it emits one code
// string per line and leaves record assembly to its caller.
package asm
