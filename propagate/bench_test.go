package propagate_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/prophnet/propagate"
)

func benchmarkChain(b *testing.B, memSaving bool, alpha float64) {
	g := randomChain(b, rand.New(rand.NewSource(1)), 5, 0.2, memSaving)
	e := propagate.NewEngine(nil, propagate.WithDiffusion(alpha, 0, 0))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Propagate(ctx, g, propagate.NewSeed(0), 0, g.Len()-1, propagate.PolicyPearson); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPropagate_Dense(b *testing.B)     { benchmarkChain(b, false, 0) }
func BenchmarkPropagate_CSR(b *testing.B)       { benchmarkChain(b, true, 0) }
func BenchmarkPropagate_Diffusion(b *testing.B) { benchmarkChain(b, true, 0.5) }
