package dataset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/factqa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	pairs := []domain.DialogPair{
		{Instruction: "Where do you live?", Answer: "I live in Berlin"},
		{Instruction: "Где вы живёте?", Answer: "Я живу в Берлине <3 & rock"},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, pairs))

	expected := `[
    {
        "instruction": "Where do you live?",
        "input": "",
        "output": "I live in Berlin"
    },
    {
        "instruction": "Где вы живёте?",
        "input": "",
        "output": "Я живу в Берлине <3 & rock"
    }
]
`
	assert.Equal(t, expected, buf.String())
}

func TestEncodeEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "finetuning_data.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	pairs := []domain.DialogPair{
		{Instruction: "What animals do you like?", Answer: "I like cats"},
		{Instruction: "¿Qué animales te gustan?", Answer: "Me gustan los gatos"},
	}
	require.NoError(t, Write(path, pairs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, len(pairs))
	for i, r := range records {
		assert.Equal(t, pairs[i].Instruction, r.Instruction)
		assert.Equal(t, pairs[i].Answer, r.Output)
		assert.Empty(t, r.Input)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriteUnwritableDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.json")
	err := Write(path, []domain.DialogPair{{Instruction: "Q", Answer: "A"}})
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
