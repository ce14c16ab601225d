package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchSourceSkipsBlankLines(t *testing.T) {
	src := newBatchSource(strings.NewReader("FIRST START 0\n\n   \nEND FIRST\n"))

	var lines []string
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}

	require.Len(t, lines, 2)
	assert.Equal(t, "FIRST START 0", lines[0])
	assert.Equal(t, "END FIRST", lines[1], "whitespace-only lines are skipped like empty ones")
	assert.NoError(t, src.err())
}

func TestBatchSourceSkipsCommentLines(t *testing.T) {
	src := newBatchSource(strings.NewReader("FIRST START 0\n. this is a comment\n.ORGLIKE WORD 1\nEND FIRST\n"))

	var lines []string
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}

	require.Len(t, lines, 3, "only the bare-period-plus-space marker is a comment")
	assert.Equal(t, "FIRST START 0", lines[0])
	assert.Equal(t, ".ORGLIKE WORD 1", lines[1], "a period with no following space is ordinary source, not a comment")
	assert.Equal(t, "END FIRST", lines[2])
}

func TestInteractiveSourceSentinels(t *testing.T) {
	in := strings.NewReader("FIRST START 0\nSTA 0\nundo\nLDA 0\nhelp\nexit\n")
	var out strings.Builder

	src := newInteractiveSource(in, &out)
	src.collect()

	var lines []string
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}

	require.Len(t, lines, 2)
	assert.Equal(t, "FIRST START 0", lines[0])
	assert.Equal(t, "LDA 0", lines[1])
	assert.Contains(t, out.String(), "enter source lines")
}
