package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/factqa/internal/prompt"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCatalog(t *testing.T) *prompt.Catalog {
	t.Helper()
	catalog, err := prompt.NewCatalog()
	require.NoError(t, err)
	return catalog
}
