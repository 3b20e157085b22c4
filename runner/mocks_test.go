package runner_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prophnet/matrix"
	"github.com/katalvlaran/prophnet/network"
	"github.com/katalvlaran/prophnet/propagate"
)

type mockLoader struct{ mock.Mock }

func (m *mockLoader) Load(ctx context.Context, basePath, ref string, memSaving bool) (*network.Graph, error) {
	args := m.Called(ctx, basePath, ref, memSaving)
	g, _ := args.Get(0).(*network.Graph)
	return g, args.Error(1)
}

type mockPropagator struct{ mock.Mock }

func (m *mockPropagator) Propagate(ctx context.Context, g *network.Graph, seed propagate.SeedVector, src, dst int, policy string) (propagate.ScoreVector, error) {
	args := m.Called(ctx, g, seed, src, dst, policy)
	s, _ := args.Get(0).(propagate.ScoreVector)
	return s, args.Error(1)
}

type mockSink struct{ mock.Mock }

func (m *mockSink) Save(path string, list propagate.RankedList) error {
	return m.Called(path, list).Error(0)
}

// recorder keeps every log line for assertions.
type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) add(level, msg string, kv []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf("%s %s %v", level, msg, kv))
}

func (r *recorder) Debug(msg string, kv ...any) { r.add("DEBU", msg, kv) }
func (r *recorder) Info(msg string, kv ...any)  { r.add("INFO", msg, kv) }
func (r *recorder) Warn(msg string, kv ...any)  { r.add("WARN", msg, kv) }
func (r *recorder) Error(msg string, kv ...any) { r.add("ERRO", msg, kv) }

// twoNetworks is drugs(0) ─drug-target─ targets(1).
func twoNetworks(t *testing.T) *network.Graph {
	t.Helper()
	dt, err := matrix.NewDenseFromRows([][]float64{{1, 1, 0}, {0, 1, 1}})
	require.NoError(t, err)
	g, err := network.NewBuilder().
		AddNodeSet("drugs", 0, []string{"aspirin", "ibuprofen"}).
		AddNodeSet("targets", 0, []string{"PTGS1", "PTGS2", "ALOX5"}).
		AddRelation("drug-target", "drugs", "targets", dt).
		Build(false)
	require.NoError(t, err)
	return g
}

func intp(i int) *int    { return &i }
func boolp(b bool) *bool { return &b }
