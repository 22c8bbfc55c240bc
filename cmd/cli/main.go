// Package main implements the arnlink CLI tool.
// It resolves AWS ARNs to console deep links and inspects parsed fields.
package main

import "github.com/arnlink/arnlink/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
