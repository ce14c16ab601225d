package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// batchSource is an asm.LineSource reading from a file, skipping blank
// lines and comment lines since the core never sees either.
type batchSource struct {
	scanner *bufio.Scanner
}

func newBatchSource(r io.Reader) *batchSource {
	return &batchSource{scanner: bufio.NewScanner(r)}
}

func (b *batchSource) Next() (string, bool) {
	for b.scanner.Scan() {
		line := b.scanner.Text()
		if strings.TrimSpace(line) == "" || isCommentLine(line) {
			continue
		}
		return line, true
	}
	return "", false
}

// isCommentLine reports whether line is a bare-period comment marker:
// its first non-space character is '.' followed immediately by a space.
// SIC/XE directives are always bare words (START, WORD, BYTE, ...), so
// this never collides with real source.
func isCommentLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return len(trimmed) >= 2 && trimmed[0] == '.' && trimmed[1] == ' '
}

func (b *batchSource) err() error {
	if err := b.scanner.Err(); err != nil {
		return errors.Wrap(err, "reading source file")
	}
	return nil
}
