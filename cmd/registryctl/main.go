// Command registryctl loads user records from YAML or JSON files into an
// in-memory registry and reports what was accepted.
package main

import "entity-registry/internal/cli"

func main() {
	cli.Execute()
}
