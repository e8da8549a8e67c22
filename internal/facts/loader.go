// Package facts reads the newline-delimited fact source and turns it into an
// ordered list of clean domain.Fact values.
package facts

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/factqa/internal/domain"
)

const (
	tagPrefix    = "<"
	bulletMarker = "- "
	// maxLineSize bounds a single fact line; bufio's 64KiB default is too small
	// for facts pasted as one long paragraph.
	maxLineSize = 1 << 20
)

// Load opens the fact source at path and parses it with Parse.
func Load(path string, limit int) ([]domain.Fact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fact source: %w", err)
	}
	defer func() { _ = f.Close() }()

	facts, err := Parse(f, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read fact source %s: %w", path, err)
	}
	return facts, nil
}

// Parse reads facts from r, one per line, in source order. Lines are trimmed;
// blank lines and lines starting with "<" (structural tags) are dropped; a
// leading "- " list marker is stripped. A positive limit keeps only the first
// limit facts.
func Parse(r io.Reader, limit int) ([]domain.Fact, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var facts []domain.Fact
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}

		fact, ok := cleanLine(line)
		if !ok {
			continue
		}
		facts = append(facts, fact)

		if limit > 0 && len(facts) == limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return facts, nil
}

func cleanLine(line string) (domain.Fact, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, tagPrefix) {
		return "", false
	}
	if rest, ok := strings.CutPrefix(line, bulletMarker); ok {
		line = strings.TrimSpace(rest)
	}
	if line == "" {
		return "", false
	}
	return domain.Fact(line), true
}
