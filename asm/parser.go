package asm

import (
	"strconv"
	"strings"
)

// ParseLine classifies one raw source line into label, opcode-spec and
// address-spec fields. Callers are responsible for stripping blank and
// comment lines before the line reaches the parser.
func ParseLine(lineNo int, raw string) (ParsedLine, error) {
	fields := strings.Fields(raw)

	var label, mnemonic, operand string
	var hasOperand bool

	switch len(fields) {
	case 3:
		label, mnemonic, operand = fields[0], fields[1], fields[2]
		hasOperand = true
	case 2:
		if isOpcodeOrDirective(fields[0]) {
			mnemonic, operand = fields[0], fields[1]
			hasOperand = true
		} else {
			label, mnemonic = fields[0], fields[1]
		}
	case 1:
		mnemonic = fields[0]
	default:
		return ParsedLine{}, lineErrorf(lineNo, "cannot parse line %q", raw)
	}

	opSpec, err := classifyMnemonic(lineNo, mnemonic)
	if err != nil {
		return ParsedLine{}, err
	}

	var addrSpec AddressSpec = AddressValue{Value: 0, Mode: ModeNone}
	if hasOperand {
		addrSpec, err = classifyOperand(lineNo, operand)
		if err != nil {
			return ParsedLine{}, err
		}
	}

	return ParsedLine{
		LineNo:  lineNo,
		Raw:     raw,
		Label:   label,
		Opcode:  opSpec,
		Address: addrSpec,
	}, nil
}

func isOpcodeOrDirective(token string) bool {
	name := strings.TrimPrefix(token, "+")
	if isDirectiveName(name) {
		return true
	}
	_, ok := lookupOpcode(name)
	return ok
}

func classifyMnemonic(lineNo int, mnemonic string) (OpcodeSpec, error) {
	if isDirectiveName(mnemonic) {
		return DirectiveSpec{Name: mnemonic}, nil
	}

	format := FormatThree
	name := mnemonic
	extended := strings.HasPrefix(mnemonic, "+")
	if extended {
		name = mnemonic[1:]
		format = FormatFour
	}

	detail, ok := lookupOpcode(name)
	if !ok {
		return nil, lineErrorf(lineNo, "unknown mnemonic %q", mnemonic)
	}
	if extended && detail.Format != FormatThree {
		return nil, lineErrorf(lineNo, "%q cannot be extended with '+'", name)
	}
	if !extended {
		format = detail.Format
	}

	return InstructionSpec{Mnemonic: name, Format: format}, nil
}

// classifyOperand implements §4.2's operand grammar: first the
// comma-split register-pair/indexed forms, then the leading-character
// dispatch for the single-part forms.
func classifyOperand(lineNo int, operand string) (AddressSpec, error) {
	if operand == "" {
		return nil, lineErrorf(lineNo, "empty operand")
	}

	parts := strings.SplitN(operand, ",", 2)
	if len(parts) == 2 {
		first, second := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if reg1, ok := lookupRegister(first); ok {
			reg2, ok := lookupRegister(second)
			if !ok {
				return nil, lineErrorf(lineNo, "unknown register %q", second)
			}
			return AddressValue{Value: (reg1 << 4) | reg2, Mode: ModeNone}, nil
		}
		if second != "X" {
			return nil, lineErrorf(lineNo, "malformed operand %q", operand)
		}
		return labelOrAddress(lineNo, first, ModeIndexed)
	}

	body := parts[0]
	switch {
	case strings.HasPrefix(body, "="):
		c, err := parseLiteralOrConstant(lineNo, body[1:])
		if err != nil {
			return nil, err
		}
		return LiteralRef{Value: c}, nil

	case strings.HasPrefix(body, "C'") || strings.HasPrefix(body, "X'"):
		c, err := parseLiteralOrConstant(lineNo, body)
		if err != nil {
			return nil, err
		}
		return ConstantRef{Value: c}, nil

	case strings.HasPrefix(body, "#"):
		return labelOrAddress(lineNo, body[1:], ModeImmediate)

	case strings.HasPrefix(body, "@"):
		return labelOrAddress(lineNo, body[1:], ModeIndirect)

	default:
		return labelOrAddress(lineNo, body, ModeDirect)
	}
}

// parseLiteralOrConstant parses the "C'...'"/"X'...'" body shared by
// literal and inline-constant operands.
func parseLiteralOrConstant(lineNo int, body string) (Constant, error) {
	if len(body) < 3 || body[1] != '\'' || body[len(body)-1] != '\'' {
		return nil, lineErrorf(lineNo, "malformed constant %q", body)
	}
	c, err := parseConstant(body[0], body[2:len(body)-1])
	if err != nil {
		return nil, lineErrorf(lineNo, "%v", err)
	}
	return c, nil
}

// labelOrAddress resolves a bare token to a decimal integer, a legacy
// register packing, or a symbolic label reference, per §4.2's
// label-or-address reclassification rule.
func labelOrAddress(lineNo int, text string, mode AddressMode) (AddressSpec, error) {
	if text == "" {
		return nil, lineErrorf(lineNo, "empty operand")
	}
	if v, err := strconv.Atoi(text); err == nil {
		return AddressValue{Value: v, Mode: mode}, nil
	}
	if reg, ok := lookupRegister(text); ok {
		return AddressValue{Value: reg * 16, Mode: mode}, nil
	}
	return LabelRef{Name: text, Mode: mode}, nil
}
