package asm

// Format is the instruction format class: the number of bytes an
// instruction occupies before any format-4 extension is applied.
type Format int

// Instruction format classes.
const (
	FormatOne Format = iota + 1
	FormatTwo
	FormatThree
	FormatFour
)

// OpcodeDetail is the catalog entry for one mnemonic: its opcode byte (with
// the low two bits always zero, per SIC/XE convention) and its native
// format. A '+' prefix at parse time promotes a FormatThree entry to
// FormatFour; the catalog itself never stores FormatFour.
type OpcodeDetail struct {
	Opcode byte
	Format Format
}

var opcodeTable = map[string]OpcodeDetail{
	"ADD":    {0x18, FormatThree},
	"ADDF":   {0x58, FormatThree},
	"ADDR":   {0x90, FormatTwo},
	"AND":    {0x40, FormatThree},
	"CLEAR":  {0xB4, FormatTwo},
	"COMP":   {0x28, FormatThree},
	"COMPF":  {0x88, FormatThree},
	"COMPR":  {0xA0, FormatTwo},
	"DIV":    {0x24, FormatThree},
	"DIVF":   {0x64, FormatThree},
	"DIVR":   {0x9C, FormatTwo},
	"FIX":    {0xC4, FormatOne},
	"FLOAT":  {0xC0, FormatOne},
	"HIO":    {0xF4, FormatOne},
	"J":      {0x3C, FormatThree},
	"JEQ":    {0x30, FormatThree},
	"JGT":    {0x34, FormatThree},
	"JLT":    {0x38, FormatThree},
	"JSUB":   {0x48, FormatThree},
	"LDA":    {0x00, FormatThree},
	"LDB":    {0x68, FormatThree},
	"LDCH":   {0x50, FormatThree},
	"LDF":    {0x70, FormatThree},
	"LDL":    {0x08, FormatThree},
	"LDS":    {0x6C, FormatThree},
	"LDT":    {0x74, FormatThree},
	"LDX":    {0x04, FormatThree},
	"LPS":    {0xD0, FormatThree},
	"MUL":    {0x20, FormatThree},
	"MULF":   {0x60, FormatThree},
	"MULR":   {0x98, FormatTwo},
	"NORM":   {0xC8, FormatOne},
	"OR":     {0x44, FormatThree},
	"RD":     {0xD8, FormatThree},
	"RMO":    {0xAC, FormatTwo},
	"RSUB":   {0x4C, FormatThree},
	"SHIFTL": {0xA4, FormatTwo},
	"SHIFTR": {0xA8, FormatTwo},
	"SIO":    {0xF0, FormatOne},
	"SSK":    {0xEC, FormatThree},
	"STA":    {0x0C, FormatThree},
	"STB":    {0x78, FormatThree},
	"STCH":   {0x54, FormatThree},
	"STF":    {0x80, FormatThree},
	"STI":    {0xD4, FormatThree},
	"STL":    {0x14, FormatThree},
	"STS":    {0x7C, FormatThree},
	"STSW":   {0xE8, FormatThree},
	"STT":    {0x84, FormatThree},
	"STX":    {0x10, FormatThree},
	"SUB":    {0x1C, FormatThree},
	"SUBF":   {0x5C, FormatThree},
	"SUBR":   {0x94, FormatTwo},
	"SVC":    {0xB0, FormatTwo},
	"TD":     {0xE0, FormatThree},
	"TIO":    {0xF8, FormatOne},
	"TIX":    {0x2C, FormatThree},
	"TIXR":   {0xB8, FormatTwo},
	"WD":     {0xDC, FormatThree},
}

var registerTable = map[string]int{
	"A":  0,
	"X":  1,
	"L":  2,
	"B":  3,
	"S":  4,
	"T":  5,
	"F":  6,
	"PC": 8,
	"SW": 9,
}

// directiveNames is the fixed set of assembler directives recognized
// ahead of opcode lookup.
var directiveNames = map[string]bool{
	"START":  true,
	"END":    true,
	"BASE":   true,
	"NOBASE": true,
	"LTORG":  true,
	"RESW":   true,
	"RESB":   true,
	"WORD":   true,
	"BYTE":   true,
	"EQU":    true,
}

func isDirectiveName(name string) bool {
	return directiveNames[name]
}

func lookupOpcode(mnemonic string) (OpcodeDetail, bool) {
	d, ok := opcodeTable[mnemonic]
	return d, ok
}

func lookupRegister(name string) (int, bool) {
	r, ok := registerTable[name]
	return r, ok
}
