package network_test

import (
	"fmt"

	"github.com/katalvlaran/prophnet/matrix"
	"github.com/katalvlaran/prophnet/network"
)

// ExampleBuilder assembles a two-network graph and inspects the inferred sizes.
func ExampleBuilder() {
	link, _ := matrix.NewCSR(2, 3, []matrix.Entry{{Row: 0, Col: 2, Value: 1}})
	g, err := network.NewBuilder().
		AddNodeSet("genes", 0, []string{"BRCA1", "TP53"}).
		AddNodeSet("phenotypes", 0, nil).
		AddRelation("gene-phenotype", "genes", "phenotypes", link).
		Build(true)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, ns := range g.NodeSets() {
		fmt.Println(ns)
	}

	// Output:
	// genes(#0, 2 entities)
	// phenotypes(#1, 3 entities)
}
