package asm_test

import (
	"testing"

	"github.com/d1ndonlymdhe/sic-xe/asm"
	"github.com/stretchr/testify/assert"
)

func TestCatalogCoversFiftyNineMnemonics(t *testing.T) {
	mnemonics := []string{
		"ADD", "ADDF", "ADDR", "AND", "CLEAR", "COMP", "COMPF", "COMPR",
		"DIV", "DIVF", "DIVR", "FIX", "FLOAT", "HIO", "J", "JEQ", "JGT",
		"JLT", "JSUB", "LDA", "LDB", "LDCH", "LDF", "LDL", "LDS", "LDT",
		"LDX", "LPS", "MUL", "MULF", "MULR", "NORM", "OR", "RD", "RMO",
		"RSUB", "SHIFTL", "SHIFTR", "SIO", "SSK", "STA", "STB", "STCH",
		"STF", "STI", "STL", "STS", "STSW", "STT", "STX", "SUB", "SUBF",
		"SUBR", "SVC", "TD", "TIO", "TIX", "TIXR", "WD",
	}
	assert.Len(t, mnemonics, 59)
	for _, m := range mnemonics {
		_, err := asm.ParseLine(1, m)
		assert.NoError(t, err, m)
	}

	line, err := asm.ParseLine(1, "LDA 5")
	assert.NoError(t, err)
	assert.Equal(t, asm.InstructionSpec{Mnemonic: "LDA", Format: asm.FormatThree}, line.Opcode)
}

func TestUnknownMnemonicIsFatal(t *testing.T) {
	_, err := asm.ParseLine(1, "FROB 5")
	assert.Error(t, err)
}

func TestUnknownRegisterIsFatal(t *testing.T) {
	_, err := asm.ParseLine(1, "RMO A,Q")
	assert.Error(t, err)
}
