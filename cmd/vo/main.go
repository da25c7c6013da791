// Package main provides the vo command line tool.
//
// vo converts JSON and YAML documents, coercing their elements to declared
// types, and merges documents with typed collection semantics:
//   - convert: re-encode a document, optionally coercing its elements
//   - merge: merge the elements of one document into another
package main

import (
	"os"

	"value-objects/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
