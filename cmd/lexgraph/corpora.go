// Corpora command: list the configured corpus adapters.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IntXgers/lexgraph/internal/corpus"
)

var corporaCmd = &cobra.Command{
	Use:   "corpora",
	Short: "List the configured corpora and their citation patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range corpus.IDs() {
			adapter, err := corpus.Lookup(id)
			if err != nil {
				return err
			}
			fmt.Printf("%-14s %s (%d citation patterns)\n",
				adapter.ID, adapter.DisplayName, len(adapter.Patterns))
		}
		return nil
	},
}
