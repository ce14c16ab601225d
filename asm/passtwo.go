package asm

// Record is one encoded output line: the source line index and its
// object code, or Empty for directives that produce no code.
type Record struct {
	LineNo int
	Code   string
	Empty  bool
}

// PassTwo walks the parsed lines a second time, read-only against ctx,
// and produces one Record per line. The pc used for PC-relative
// displacement is derived directly from pass one's recorded address and
// width for the current line (LineAddrs[i]+LineLocInc[i]) rather than
// from a running accumulator: that is exactly "the address of the
// following instruction" the SIC/XE rule calls for, and it falls out of
// data pass one already computed instead of needing its own seeding.
func PassTwo(ctx *Context, lines []ParsedLine) ([]Record, error) {
	records := make([]Record, len(lines))
	base := 0
	haveBase := false

	for i, ln := range lines {
		pc := ctx.LineAddrs[i] + ctx.LineLocInc[i]

		switch op := ln.Opcode.(type) {
		case DirectiveSpec:
			switch op.Name {
			case "BASE":
				v, err := resolveTarget(ctx, ln)
				if err != nil {
					return nil, err
				}
				base = v
				haveBase = true
				records[i] = Record{LineNo: ln.LineNo, Empty: true}
				continue
			case "NOBASE":
				base = 0
				haveBase = false
				records[i] = Record{LineNo: ln.LineNo, Empty: true}
				continue
			case "START", "END", "LTORG", "EQU", "RESW", "RESB":
				records[i] = Record{LineNo: ln.LineNo, Empty: true}
				continue
			case "BYTE":
				c, ok := ln.Address.(ConstantRef)
				if !ok {
					return nil, lineErrorf(ln.LineNo, "BYTE requires a constant operand")
				}
				records[i] = Record{LineNo: ln.LineNo, Code: c.Value.hexCode()}
				continue
			case "WORD":
				v, ok := ln.Address.(AddressValue)
				if !ok {
					return nil, lineErrorf(ln.LineNo, "WORD requires an integer operand")
				}
				records[i] = Record{LineNo: ln.LineNo, Code: formatHex(uint32(v.Value)&0xFFFFFF, hexWidth(3))}
				continue
			default:
				return nil, lineErrorf(ln.LineNo, "unhandled directive %q", op.Name)
			}

		case InstructionSpec:
			code, err := encodeInstruction(ctx, ln, op, pc, base, haveBase)
			if err != nil {
				return nil, err
			}
			records[i] = Record{LineNo: ln.LineNo, Code: code}
			continue
		}

		return nil, lineErrorf(ln.LineNo, "unhandled opcode-spec")
	}

	return records, nil
}

// resolveTarget resolves an address-spec to its absolute integer value
// against the label and literal tables.
func resolveTarget(ctx *Context, ln ParsedLine) (int, error) {
	switch addr := ln.Address.(type) {
	case AddressValue:
		return addr.Value, nil
	case LabelRef:
		v, ok := ctx.LabelMap[addr.Name]
		if !ok {
			return 0, lineErrorf(ln.LineNo, "undefined label %q", addr.Name)
		}
		return v, nil
	case LiteralRef:
		v, ok := ctx.LiteralMap[addr.Value]
		if !ok {
			return 0, lineErrorf(ln.LineNo, "unplaced literal in line")
		}
		return v, nil
	default:
		return 0, lineErrorf(ln.LineNo, "operand has no resolvable address")
	}
}

func addressMode(addr AddressSpec) AddressMode {
	switch a := addr.(type) {
	case AddressValue:
		return a.Mode
	case LabelRef:
		return a.Mode
	default:
		return ModeDirect
	}
}

// encodeInstruction implements §4.5's format One/Two/Three/Four
// encoding, reusing the opcode catalog entry resolved at parse time.
func encodeInstruction(ctx *Context, ln ParsedLine, op InstructionSpec, pc, base int, haveBase bool) (string, error) {
	detail, ok := lookupOpcode(op.Mnemonic)
	if !ok {
		return "", lineErrorf(ln.LineNo, "unknown mnemonic %q", op.Mnemonic)
	}
	opBits := uint32(detail.Opcode) &^ 0x03

	switch op.Format {
	case FormatOne:
		return formatHex(opBits, hexWidth(1)), nil

	case FormatTwo:
		v, ok := ln.Address.(AddressValue)
		if !ok {
			return "", lineErrorf(ln.LineNo, "format-2 instruction requires a register operand")
		}
		word := opBits<<8 | uint32(v.Value)&0xFF
		return formatHex(word, hexWidth(2)), nil

	case FormatThree, FormatFour:
		// Formats 3/4 pack only the opcode's top 6 bits (its low two bits
		// are the n/i addressing flags, not part of the opcode field).
		opcode6 := uint32(detail.Opcode) >> 2

		var f flags
		f.applyMode(addressMode(ln.Address))

		target, err := resolveTarget(ctx, ln)
		if err != nil {
			return "", err
		}

		if op.Format == FormatFour {
			f.setExtended()
			word := opcode6<<26 | f.bits()<<20 | uint32(target)&0xFFFFF
			return formatHex(word, hexWidth(4)), nil
		}

		disp := target - pc
		if disp >= -2048 && disp <= 2047 {
			f.setPCRelative()
			d := uint32(disp) & 0xFFF
			word := opcode6<<18 | f.bits()<<12 | d
			return formatHex(word, hexWidth(3)), nil
		}

		if haveBase {
			disp = target - base
			if disp >= 0 && disp < 4096 {
				f.setBaseRelative()
				d := uint32(disp) & 0xFFF
				word := opcode6<<18 | f.bits()<<12 | d
				return formatHex(word, hexWidth(3)), nil
			}
		}

		return "", lineErrorf(ln.LineNo, "displacement out of range for target %d", target)

	default:
		return "", lineErrorf(ln.LineNo, "unknown instruction format")
	}
}
