// SPDX-License-Identifier: MIT

// Command rolefix enumerates the stable role structures of a small network.
//
// The network and the search are described in a YAML file:
//
//	actors: 4
//	ties:
//	  - [0, 1]
//	  - [1, 2]
//	  - [3, 2]
//	structure: equivalence   # relation | equivalence | ranking
//	direction: restriction   # restriction | extension
//	engine: covers           # covers | projections
//	limit: 0
//
// Usage:
//
//	rolefix enumerate --config network.yaml [--limit N] [--engine projections] [--verbose]
//	rolefix version
package main

import (
	"log"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("rolefix: %v", err)
		os.Exit(1)
	}
}

// tracer traces with key 'rolelattice'.
func tracer() tracing.Trace {
	return tracing.Select("rolelattice")
}
