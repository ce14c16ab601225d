package asm

// flags holds the six addressing-mode bits of a format-3/4 instruction:
// n, i, x, b, p, e. The zero value is all bits clear.
type flags struct {
	n, i, x, b, p, e bool
}

func (f *flags) setDirect() {
	f.n = true
	f.i = true
}

func (f *flags) setIndirect() {
	f.n = true
	f.i = false
}

func (f *flags) setImmediate() {
	f.n = false
	f.i = true
}

func (f *flags) setIndexed() {
	f.x = true
}

func (f *flags) setBaseRelative() {
	f.b = true
}

func (f *flags) setPCRelative() {
	f.p = true
}

func (f *flags) setExtended() {
	f.e = true
}

func bit(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

// bits packs n,i,x,b,p,e into the low 6 bits of a uint32, n in bit 5.
func (f flags) bits() uint32 {
	return bit(f.n)<<5 | bit(f.i)<<4 | bit(f.x)<<3 | bit(f.b)<<2 | bit(f.p)<<1 | bit(f.e)
}

// applyMode sets the nixbpe bits corresponding to an operand's addressing
// mode, mirroring the encoder's "determine the addressing mode bits from
// mode" step. Indexed addressing is direct addressing with x also set.
func (f *flags) applyMode(mode AddressMode) {
	switch mode {
	case ModeImmediate:
		f.setImmediate()
	case ModeIndirect:
		f.setIndirect()
	case ModeIndexed:
		f.setDirect()
		f.setIndexed()
	default: // ModeNone, ModeDirect
		f.setDirect()
	}
}
