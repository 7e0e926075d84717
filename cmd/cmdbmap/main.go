// Package main is the entry point for the cmdbmap CLI.
package main

import "github.com/edgewise-labs/cmdbmap/internal/cli"

func main() {
	cli.Execute()
}
