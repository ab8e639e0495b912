// Package main is the entry point for the facetwall application.
package main

import (
	"github.com/facetwall/facetwall/cmd"
	"github.com/facetwall/facetwall/config"
	"github.com/facetwall/facetwall/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
