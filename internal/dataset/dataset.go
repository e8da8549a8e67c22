// Package dataset writes dialog pairs as an Alpaca-style fine-tuning dataset.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phrazzld/factqa/internal/domain"
)

// Record is one instruction-tuning example. Input is always empty.
type Record struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
}

// Records maps pairs to records, preserving order.
func Records(pairs []domain.DialogPair) []Record {
	records := make([]Record, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, Record{Instruction: p.Instruction, Output: p.Answer})
	}
	return records
}

// Encode writes pairs to w as a single indented JSON array. Non-ASCII text and
// HTML-sensitive characters are written verbatim.
func Encode(w io.Writer, pairs []domain.DialogPair) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(Records(pairs)); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	return nil
}

// Write encodes pairs into the file at path. The file is written to a
// temporary sibling first and renamed into place, so a failed run never
// leaves a truncated dataset behind.
func Write(path string, pairs []domain.DialogPair) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, pairs); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return nil
}
