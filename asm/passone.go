package asm

// PassOne walks lines in input order, resolving every label and literal
// to an absolute address and recording, per line, the address it was
// placed at and the byte width it was charged. It is the only phase
// that mutates ctx.
func PassOne(ctx *Context, lines []ParsedLine) error {
	ctx.LineAddrs = make([]int, len(lines))
	ctx.LineLocInc = make([]int, len(lines))

	var loc, locInc int

	for i, ln := range lines {
		loc += locInc

		if i == 0 {
			d, ok := ln.Opcode.(DirectiveSpec)
			if !ok || d.Name != "START" {
				return lineErrorf(ln.LineNo, "first line must be START")
			}
			v, ok := ln.Address.(AddressValue)
			if !ok {
				return lineErrorf(ln.LineNo, "START requires an integer address")
			}
			loc = v.Value
			if ln.Label != "" {
				if _, dup := ctx.LabelMap[ln.Label]; dup {
					return lineErrorf(ln.LineNo, "duplicate label %q", ln.Label)
				}
				ctx.LabelMap[ln.Label] = loc
			}
			locInc = 0
			ctx.LineAddrs[i] = loc
			ctx.LineLocInc[i] = locInc
			continue
		}

		if d, ok := ln.Opcode.(DirectiveSpec); ok && d.Name == "LTORG" {
			ctx.flushLiterals(&loc)
			ctx.LineAddrs[i] = loc
			locInc = 0
			ctx.LineLocInc[i] = locInc
			continue
		}

		if lit, ok := ln.Address.(LiteralRef); ok {
			ctx.enrollLiteral(lit.Value)
		}

		if d, ok := ln.Opcode.(DirectiveSpec); ok && d.Name == "EQU" {
			if ln.Label == "" {
				return lineErrorf(ln.LineNo, "EQU requires a label")
			}
			if _, dup := ctx.LabelMap[ln.Label]; dup {
				return lineErrorf(ln.LineNo, "duplicate label %q", ln.Label)
			}
			v, err := resolveEquValue(ctx, ln, loc)
			if err != nil {
				return err
			}
			ctx.LabelMap[ln.Label] = v
			ctx.LineAddrs[i] = loc
			ctx.LineLocInc[i] = 0
			locInc = 0
			continue
		}

		if ln.Label != "" {
			if _, dup := ctx.LabelMap[ln.Label]; dup {
				return lineErrorf(ln.LineNo, "duplicate label %q", ln.Label)
			}
			ctx.LabelMap[ln.Label] = loc
			if cref, ok := ln.Address.(ConstantRef); ok {
				ctx.ConstantMap[ln.Label] = cref.Value
			}
		}

		var err error
		locInc, err = lineSize(ln)
		if err != nil {
			return err
		}

		ctx.LineAddrs[i] = loc
		ctx.LineLocInc[i] = locInc

		if d, ok := ln.Opcode.(DirectiveSpec); ok && d.Name == "END" {
			ctx.flushLiterals(&loc)
		}
	}

	return nil
}

// resolveEquValue binds an EQU label to the integer value of its
// operand: "*" means the current location counter, a bare integer is
// used directly, and a label name is looked up (it must already be
// defined — forward references through EQU are not supported).
func resolveEquValue(ctx *Context, ln ParsedLine, loc int) (int, error) {
	switch addr := ln.Address.(type) {
	case AddressValue:
		return addr.Value, nil
	case LabelRef:
		if addr.Name == "*" {
			return loc, nil
		}
		v, ok := ctx.LabelMap[addr.Name]
		if !ok {
			return 0, lineErrorf(ln.LineNo, "EQU references undefined label %q", addr.Name)
		}
		return v, nil
	default:
		return 0, lineErrorf(ln.LineNo, "EQU requires an address or label operand")
	}
}

// lineSize computes loc_inc for a parsed line per §4.4's size table.
func lineSize(ln ParsedLine) (int, error) {
	switch op := ln.Opcode.(type) {
	case InstructionSpec:
		switch op.Format {
		case FormatOne:
			return 1, nil
		case FormatTwo:
			return 2, nil
		case FormatThree:
			return 3, nil
		case FormatFour:
			return 4, nil
		}
		return 0, lineErrorf(ln.LineNo, "unknown instruction format")

	case DirectiveSpec:
		switch op.Name {
		case "END", "BASE", "NOBASE", "LTORG", "EQU":
			return 0, nil
		case "WORD":
			return 3, nil
		case "RESW":
			v, ok := ln.Address.(AddressValue)
			if !ok {
				return 0, lineErrorf(ln.LineNo, "RESW requires an integer operand")
			}
			return 3 * v.Value, nil
		case "RESB":
			v, ok := ln.Address.(AddressValue)
			if !ok {
				return 0, lineErrorf(ln.LineNo, "RESB requires an integer operand")
			}
			return v.Value, nil
		case "BYTE":
			c, ok := ln.Address.(ConstantRef)
			if !ok {
				return 0, lineErrorf(ln.LineNo, "BYTE requires a constant operand")
			}
			return c.Value.Len(), nil
		}
		return 0, lineErrorf(ln.LineNo, "unhandled directive %q", op.Name)
	}
	return 0, lineErrorf(ln.LineNo, "unhandled opcode-spec")
}
