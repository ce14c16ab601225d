package asm_test

import (
	"testing"

	"github.com/d1ndonlymdhe/sic-xe/asm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAll(t *testing.T, src []string) []asm.ParsedLine {
	t.Helper()
	lines := make([]asm.ParsedLine, 0, len(src))
	for i, raw := range src {
		ln, err := asm.ParseLine(i+1, raw)
		require.NoError(t, err)
		lines = append(lines, ln)
	}
	return lines
}

func TestPassOneRequiresStartFirst(t *testing.T) {
	lines := parseAll(t, []string{"LDA 2"})
	ctx := asm.NewContext()
	err := asm.PassOne(ctx, lines)
	assert.Error(t, err)
}

func TestPassOneSeedsLocFromStart(t *testing.T) {
	lines := parseAll(t, []string{
		"FIRST START 1000",
		"LDA 2",
		"END FIRST",
	})
	ctx := asm.NewContext()
	require.NoError(t, asm.PassOne(ctx, lines))

	assert.Equal(t, 1000, ctx.LineAddrs[0])
	assert.Equal(t, 1000, ctx.LineAddrs[1])
	assert.Equal(t, 3, ctx.LineLocInc[1])
	assert.Equal(t, 1003, ctx.LineAddrs[2])
	assert.Equal(t, 1000, ctx.LabelMap["FIRST"])
}

func TestPassOneDuplicateLabelIsFatal(t *testing.T) {
	lines := parseAll(t, []string{
		"FIRST START 0",
		"LOOP  LDA 2",
		"LOOP  STA 4",
		"      END FIRST",
	})
	ctx := asm.NewContext()
	err := asm.PassOne(ctx, lines)
	assert.Error(t, err)
}

func TestPassOneAddressMonotonicity(t *testing.T) {
	lines := parseAll(t, []string{
		"PROG  START 0",
		"A     LDA 2",
		"B     STA 4",
		"      END PROG",
	})
	ctx := asm.NewContext()
	require.NoError(t, asm.PassOne(ctx, lines))
	assert.LessOrEqual(t, ctx.LabelMap["A"], ctx.LabelMap["B"])
}

func TestPassOneStorageDirectiveSizes(t *testing.T) {
	lines := parseAll(t, []string{
		"PROG   START 0",
		"RET    RESW 1",
		"BUF    RESB 4",
		"STR    BYTE C'EOF'",
		"HEX    BYTE X'F1'",
		"       WORD 3",
		"       END PROG",
	})
	ctx := asm.NewContext()
	require.NoError(t, asm.PassOne(ctx, lines))

	assert.Equal(t, 3, ctx.LineLocInc[1])
	assert.Equal(t, 4, ctx.LineLocInc[2])
	assert.Equal(t, 3, ctx.LineLocInc[3])
	assert.Equal(t, 1, ctx.LineLocInc[4])
	assert.Equal(t, 3, ctx.LineLocInc[5])
}

func TestPassOneLiteralPoolFlushOnLTORG(t *testing.T) {
	lines := parseAll(t, []string{
		"PROG  START 0",
		"      LDA =X'05'",
		"      LTORG",
		"      LDA =X'05'",
		"      END PROG",
	})
	ctx := asm.NewContext()
	require.NoError(t, asm.PassOne(ctx, lines))

	lit := asm.HexConstant(0x05)
	addr, ok := ctx.LiteralMap[lit]
	require.True(t, ok)
	assert.Equal(t, ctx.LineAddrs[1]+ctx.LineLocInc[1], addr, "literal is placed where the LTORG line begins")
	assert.Empty(t, ctx.LiteralPool)
}

func TestPassOneLiteralPoolFlushAtEnd(t *testing.T) {
	lines := parseAll(t, []string{
		"PROG  START 0",
		"      LDA =X'05'",
		"      END PROG",
	})
	ctx := asm.NewContext()
	require.NoError(t, asm.PassOne(ctx, lines))

	lit := asm.HexConstant(0x05)
	_, ok := ctx.LiteralMap[lit]
	assert.True(t, ok, "literal must be placed even with no explicit LTORG")
}

func TestPassOneEquBindsCurrentLocation(t *testing.T) {
	lines := parseAll(t, []string{
		"PROG  START 0",
		"HERE  EQU  *",
		"      LDA 2",
		"      END PROG",
	})
	ctx := asm.NewContext()
	require.NoError(t, asm.PassOne(ctx, lines))
	assert.Equal(t, ctx.LineAddrs[1], ctx.LabelMap["HERE"])
}

func TestPassOneEquBindsLabelValue(t *testing.T) {
	lines := parseAll(t, []string{
		"PROG   START 0",
		"BASE1  LDA 2",
		"ALIAS  EQU  BASE1",
		"       END PROG",
	})
	ctx := asm.NewContext()
	require.NoError(t, asm.PassOne(ctx, lines))
	assert.Equal(t, ctx.LabelMap["BASE1"], ctx.LabelMap["ALIAS"])
}
