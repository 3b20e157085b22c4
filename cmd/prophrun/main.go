// Command prophrun propagates relevance from a query entity of one network
// to the entities of another and prints or saves the ranked result.
//
//	prophrun --config prophrun.cfg --qname aspirin --src 0 --dst 2
package main

import (
	"os"
)

func main() {
	if err := NewCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
