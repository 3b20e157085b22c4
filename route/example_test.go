package route_test

import (
	"fmt"

	"github.com/katalvlaran/prophnet/matrix"
	"github.com/katalvlaran/prophnet/network"
	"github.com/katalvlaran/prophnet/route"
)

// ExampleResolve finds the two-hop chain linking drugs to diseases.
func ExampleResolve() {
	dt, _ := matrix.NewDense(2, 2, []float64{1, 0, 0, 1})
	td, _ := matrix.NewDense(2, 3, []float64{1, 0, 0, 0, 1, 1})
	g, _ := network.NewBuilder().
		AddNodeSet("drugs", 0, nil).
		AddNodeSet("targets", 0, nil).
		AddNodeSet("diseases", 0, nil).
		AddRelation("drug-target", "drugs", "targets", dt).
		AddRelation("target-disease", "targets", "diseases", td).
		Build(false)

	p, err := route.Resolve(g, 2, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)

	// Output:
	// diseases -[target-disease]->ᵀ targets -[drug-target]->ᵀ drugs
}
