// Command plantgraph drives one perturbation scenario against a plant
// dependency network loaded from a CSV topology file.
package main

import "github.com/latticekit/plantgraph/cmd/plantgraph/cmd"

func main() {
	cmd.Execute()
}
