// Stats command: print a corpus's build statistics.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IntXgers/lexgraph/internal/corpus"
)

var flagStatsCorpus string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show build statistics for a corpus",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, err := corpus.Lookup(flagStatsCorpus)
		if err != nil {
			return err
		}
		store, err := openStore(adapter.ID)
		if err != nil {
			return err
		}
		defer store.Close()

		stats, found, err := store.GetStats()
		if err != nil {
			return err
		}
		if !found {
			if _, interrupted, err := store.LoadCheckpoint(); err == nil && interrupted {
				fmt.Printf("Corpus %s has an interrupted build; re-run 'lexgraph build' to resume\n", adapter.ID)
				return nil
			}
			fmt.Printf("Corpus %s has no completed build\n", adapter.ID)
			return nil
		}

		fmt.Printf("Corpus:                 %s\n", stats.CorpusID)
		fmt.Printf("Documents:              %d\n", stats.TotalDocuments)
		fmt.Printf("With outbound cites:    %d\n", stats.DocumentsWithOutbound)
		fmt.Printf("With inbound cites:     %d\n", stats.DocumentsWithInbound)
		fmt.Printf("Complex chains:         %d\n", stats.ComplexChainCount)
		fmt.Printf("Unknown citations:      %d\n", stats.UnknownCitationCount)
		fmt.Printf("Skipped input lines:    %d\n", stats.SkippedInputLines)
		fmt.Printf("Built at:               %s\n", stats.BuiltAt)
		fmt.Printf("Builder version:        %s\n", stats.BuilderVersion)
		fmt.Printf("Build id:               %s\n", stats.BuildID)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&flagStatsCorpus, "corpus", "", "corpus id (see 'lexgraph corpora')")
	statsCmd.MarkFlagRequired("corpus")
}
