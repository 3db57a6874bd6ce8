// Package main is the entry point for the aectl CLI.
package main

import (
	"github.com/donaldgifford/aliexpress/cmd/aectl/cmd"
)

func main() {
	cmd.Execute()
}
