package clilog_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/internal/clilog"
)

func TestNew_BadLevel(t *testing.T) {
	_, err := clilog.New(&bytes.Buffer{}, "x", "loud")
	require.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := clilog.New(&buf, "gridsearch", "info")
	require.NoError(t, err)

	logger.Debug("hidden", "algorithm", "dfs")
	logger.Info("search done", "algorithm", "bfs", "moves", 4)

	out := buf.String()
	require.Contains(t, out, "gridsearch")
	require.Contains(t, out, "search done")
	require.Contains(t, out, "algorithm=bfs")
	require.NotContains(t, out, "hidden")
}
