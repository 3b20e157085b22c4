package runner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prophnet/propagate"
	"github.com/katalvlaran/prophnet/runner"
)

func TestFileSink_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.tsv")
	list := propagate.RankedList{
		{Rank: 1, Index: 4, Label: "EGFR", Score: 0.75},
		{Rank: 2, Index: 0, Score: 0.125},
	}

	require.NoError(t, runner.FileSink{Header: true}.Save(path, list))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "rank\tindex\tlabel\tscore\n1\t4\tEGFR\t0.75\n2\t0\t\t0.125\n", string(data))

	// overwrite in place, no temp files left behind
	require.NoError(t, runner.FileSink{}.Save(path, list[:1]))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1\t4\tEGFR\t0.75\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileSink_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "out.tsv")
	require.Error(t, runner.FileSink{}.Save(path, nil))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestQuerySelector_String(t *testing.T) {
	require.Equal(t, "#3", runner.ByIndex(3).String())
	require.Equal(t, `"TP53"`, runner.ByName("TP53").String())
}
