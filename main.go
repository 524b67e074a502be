// main is the entry point for the treehealth CLI.
package main

import (
	"github.com/huangsam/treehealth/cmd"
	"github.com/huangsam/treehealth/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
