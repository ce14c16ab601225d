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

// AddressMode is the addressing flavor carried by an operand: how the
// resolved target participates in nixbpe flag selection.
type AddressMode int

// Addressing modes, per §3/§4.2.
const (
	ModeNone AddressMode = iota
	ModeImmediate
	ModeIndirect
	ModeIndexed
	ModeDirect
)

// OpcodeSpec is the sum type classifying a parsed line's mnemonic field:
// either a directive or a sized opcode. It is implemented as a closed set
// of two concrete types switched over exhaustively by the encoder, per
// the "sum types over inheritance" design note.
type OpcodeSpec interface {
	opcodeSpec()
}

// DirectiveSpec names one of the fixed directive mnemonics.
type DirectiveSpec struct {
	Name string
}

func (DirectiveSpec) opcodeSpec() {}

// InstructionSpec names a catalog mnemonic together with its resolved
// format (format four iff the source carried a leading '+').
type InstructionSpec struct {
	Mnemonic string
	Format   Format
}

func (InstructionSpec) opcodeSpec() {}

// AddressSpec is the sum type classifying a parsed line's operand field.
type AddressSpec interface {
	addressSpec()
}

// AddressValue is a fully-resolved integer operand (a decimal literal or
// a register-pair/legacy register packing), tagged with its addressing
// mode.
type AddressValue struct {
	Value int
	Mode  AddressMode
}

func (AddressValue) addressSpec() {}

// LabelRef is a symbolic operand to be resolved against the label table
// in pass two (or, for EQU, in pass one).
type LabelRef struct {
	Name string
	Mode AddressMode
}

func (LabelRef) addressSpec() {}

// LiteralRef is a =C'...'/=X'...' operand awaiting placement in the
// literal pool.
type LiteralRef struct {
	Value Constant
}

func (LiteralRef) addressSpec() {}

// ConstantRef is an inline C'...'/X'...' operand, used by the BYTE
// directive. WORD does not accept it: WORD takes only an integer operand.
type ConstantRef struct {
	Value Constant
}

func (ConstantRef) addressSpec() {}

// ParsedLine is one classified source line.
type ParsedLine struct {
	LineNo  int
	Raw     string
	Label   string
	Opcode  OpcodeSpec
	Address AddressSpec
}

// Context is the assembly context: the single owned record threading the
// symbol tables through both passes, per the "symbol tables are
// process-scoped" design note. It is mutated only during pass one and is
// read-only during pass two.
type Context struct {
	LabelMap    map[string]int
	ConstantMap map[string]Constant
	LiteralPool []Constant
	LiteralMap  map[Constant]int

	// LineAddrs and LineLocInc record, per parsed line, the address the
	// line was placed at and the byte width pass one assigned it. Pass
	// two reuses LineLocInc so "loc_inc added before displacement
	// computation" always matches what pass one actually charged for
	// that line.
	LineAddrs  []int
	LineLocInc []int
}

// NewContext returns an empty assembly context with its tables
// initialized. The opcode and register catalogs are package-level and
// read-only; they are not part of Context because they never change
// across assemblies.
func NewContext() *Context {
	return &Context{
		LabelMap:    make(map[string]int),
		ConstantMap: make(map[string]Constant),
		LiteralMap:  make(map[Constant]int),
	}
}

// enrollLiteral appends lit to the literal pool unless it is already
// present there or already placed, preserving the "ordered sequence of
// distinct literals" invariant.
func (c *Context) enrollLiteral(lit Constant) {
	if _, placed := c.LiteralMap[lit]; placed {
		return
	}
	for _, pending := range c.LiteralPool {
		if pending == lit {
			return
		}
	}
	c.LiteralPool = append(c.LiteralPool, lit)
}

// flushLiterals assigns every pending literal the current location,
// advances loc past each one in turn, then empties the pool. This is the
// corrected LTORG/end-of-program behavior per spec.md §9: the pool is
// iterated before it is cleared.
func (c *Context) flushLiterals(loc *int) {
	for _, lit := range c.LiteralPool {
		if _, placed := c.LiteralMap[lit]; placed {
			continue
		}
		c.LiteralMap[lit] = *loc
		*loc += lit.Len()
	}
	c.LiteralPool = c.LiteralPool[:0]
}
