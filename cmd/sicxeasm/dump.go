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
	"io"
	"sort"
	"strconv"

	"github.com/d1ndonlymdhe/sic-xe/asm"
)

// dumpSymbols writes the label table to w, one "name address" pair per
// line sorted by name, for -dump runs. This mirrors the assembler
// symbol state the way a VM memory dump mirrors VM state: a plain,
// greppable snapshot taken after a successful run.
func dumpSymbols(ctx *asm.Context, w io.Writer) error {
	names := make([]string, 0, len(ctx.LabelMap))
	for name := range ctx.LabelMap {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := io.WriteString(w, formatSymbolLine(name, ctx.LabelMap[name])); err != nil {
			return err
		}
	}
	return nil
}

func formatSymbolLine(name string, addr int) string {
	return name + "\t" + strconv.Itoa(addr) + "\n"
}
