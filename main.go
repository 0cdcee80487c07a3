// Package main is the entry point for the dotcov CLI.
package main

import "dotcov.dev/pkg/dotcov/cmd"

func main() {
	cmd.Execute()
}
