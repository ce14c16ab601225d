package asm

import (
	"strconv"
	"strings"
)

// Constant is a tagged union for the inline/literal constant forms of
// §4.2: C'...' string constants and X'...' hex constants. Both variants
// are plain comparable Go values so a Constant can be used directly as a
// map key in the literal pool.
type Constant interface {
	constant()
	// Len is the byte width the constant occupies once placed.
	Len() int
	// hexCode renders the constant's object-code bytes as upper-case hex,
	// the only point at which a Constant is turned into text.
	hexCode() string
}

// SicString is a C'...' constant: one byte per character.
type SicString string

func (SicString) constant() {}

// Len returns the number of bytes the string occupies.
func (s SicString) Len() int { return len(s) }

func (s SicString) hexCode() string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		writeHexByte(&b, s[i])
	}
	return b.String()
}

// HexConstant is an X'...' constant: an integer whose object-code byte
// length is the number of hex digits in its value, rounded up to a whole
// byte.
type HexConstant int

func (HexConstant) constant() {}

// Len returns ⌈hex-digit-count/2⌉ for the constant's value.
func (h HexConstant) Len() int {
	return (len(strconv.FormatInt(int64(h), 16)) + 1) / 2
}

func (h HexConstant) hexCode() string {
	s := strings.ToUpper(strconv.FormatInt(int64(h), 16))
	if len(s)%2 != 0 {
		s = "0" + s
	}
	return s
}

func writeHexByte(b *strings.Builder, v byte) {
	const digits = "0123456789ABCDEF"
	b.WriteByte(digits[v>>4])
	b.WriteByte(digits[v&0xF])
}

// parseConstant interprets the body between quotes of a C'...' or X'...'
// form according to its qualifier character.
func parseConstant(qualifier byte, body string) (Constant, error) {
	switch qualifier {
	case 'C':
		return SicString(body), nil
	case 'X':
		v, err := strconv.ParseInt(body, 16, 64)
		if err != nil {
			return nil, errorf("invalid hex constant %q", body)
		}
		return HexConstant(v), nil
	default:
		return nil, errorf("invalid constant qualifier %q", string(qualifier))
	}
}
