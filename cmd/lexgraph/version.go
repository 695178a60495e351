package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IntXgers/lexgraph/internal/pipeline"
)

// Version is the CLI version, kept in lockstep with the builder version
// stamped into corpus stats.
const Version = pipeline.BuilderVersion

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lexgraph v" + Version)
	},
}
