package network_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/prophnet/matrix"
	"github.com/katalvlaran/prophnet/network"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "drugs.yaml"))
	require.NoError(t, err)
	return data
}

func TestFileLoader_LoadsFixture(t *testing.T) {
	for _, memsave := range []bool{false, true} {
		g, err := network.NewFileLoader(nil).Load(context.Background(), "testdata", "drugs.yaml", memsave)
		require.NoError(t, err)
		require.Equal(t, 3, g.Len())
		require.Equal(t, memsave, g.MemSaving())
		require.Len(t, g.Relations(), 3)

		diseases, ok := g.Lookup("diseases")
		require.True(t, ok)
		require.Equal(t, 3, diseases.Size())

		r, _ := g.Relation(2)
		require.Equal(t, "disease-target", r.Name())
		v, err := r.Matrix().At(2, 3)
		require.NoError(t, err)
		require.Equal(t, 0.25, v)

		if memsave {
			require.IsType(t, &matrix.CSR{}, r.Matrix())
		} else {
			require.IsType(t, &matrix.Dense{}, r.Matrix())
		}
	}
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := network.NewFileLoader(nil).Load(context.Background(), t.TempDir(), "test.mat", false)
	require.ErrorIs(t, err, network.ErrDataLoad)
}

func TestFileLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := network.NewFileLoader(nil).Load(ctx, "testdata", "drugs.yaml", false)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDecode_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(readFixture(t))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	g, err := network.Decode(buf.Bytes(), true)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"networks":[{"name":"a","size":2},{"name":"b","labels":["p"]}],` +
		`"relations":[{"src":"a","dst":"b","entries":[[1,0,2]]}]}`
	g, err := network.Decode([]byte(doc), false)
	require.NoError(t, err)
	r, _ := g.Relation(0)
	require.Equal(t, "a-b", r.Name())
	v, _ := r.Matrix().At(1, 0)
	require.Equal(t, 2.0, v)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"empty file":         ``,
		"not yaml":           `networks: [`,
		"both forms":         "networks: [{name: a, size: 1}]\nrelations: [{src: a, dst: a, dense: [[1]], entries: [[0,0,1]]}]",
		"neither form":       "networks: [{name: a, size: 1}]\nrelations: [{src: a, dst: a}]",
		"entries no shape":   "networks: [{name: a}, {name: b}]\nrelations: [{src: a, dst: b, entries: [[0,0,1]]}]",
		"bad triplet":        "networks: [{name: a, size: 1}]\nrelations: [{src: a, dst: a, entries: [[0,0]]}]",
		"fractional index":   "networks: [{name: a, size: 2}]\nrelations: [{src: a, dst: a, entries: [[0.5,0,1]]}]",
		"ragged dense":       "networks: [{name: a}, {name: b}]\nrelations: [{src: a, dst: b, dense: [[1,2],[3]]}]",
		"dense vs shape":     "networks: [{name: a}, {name: b}]\nrelations: [{src: a, dst: b, shape: [1,1], dense: [[1,2]]}]",
		"inconsistent sizes": "networks: [{name: a, size: 3}, {name: b}]\nrelations: [{src: a, dst: b, dense: [[1],[2]]}]",
		"unknown network":    "networks: [{name: a, size: 1}]\nrelations: [{src: a, dst: z, dense: [[1]]}]",
		"negative dense":     "networks: [{name: a, size: 1}]\nrelations: [{src: a, dst: a, dense: [[-1]]}]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := network.Decode([]byte(doc), false)
			require.ErrorIs(t, err, network.ErrDataLoad)
		})
	}
}

func TestResolvePath(t *testing.T) {
	require.Equal(t, filepath.Join("data", "m.yaml"), network.ResolvePath("data", "m.yaml"))
	require.Equal(t, "m.yaml", network.ResolvePath("", "m.yaml"))
	abs := filepath.Join(t.TempDir(), "m.yaml")
	require.Equal(t, abs, network.ResolvePath("data", abs))
}

func TestDecode_NegativeEntryNotMaskedByDuplicates(t *testing.T) {
	for _, entries := range []string{"[[0,0,-1],[0,0,2]]", "[[0,0,-1],[0,0,1]]", "[[1,0,-0.5]]"} {
		doc := "networks: [{name: a, size: 2}]\nrelations: [{src: a, dst: a, entries: " + entries + "}]"
		for _, memsave := range []bool{true, false} {
			_, err := network.Decode([]byte(doc), memsave)
			require.ErrorIs(t, err, network.ErrDataLoad, entries)
			require.ErrorIs(t, err, matrix.ErrNegativeEntry, entries)
		}
	}
}
