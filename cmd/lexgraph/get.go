// Get command: point lookup in one of the five stores.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IntXgers/lexgraph/internal/corpus"
)

var flagGetCorpus string

var getCmd = &cobra.Command{
	Use:   "get <store> <key>",
	Short: "Look up one key in a store",
	Long: `Get prints the JSON value stored under a key in one of the five stores:
primary, citations, reverse_citations, chains, metadata.

A missing key is a normal outcome, not an error: no outbound citations,
no inbound citations, or not part of a complex chain, depending on the
store. The metadata store holds one key, "corpus_info".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		storeName, key := args[0], args[1]

		adapter, err := corpus.Lookup(flagGetCorpus)
		if err != nil {
			return err
		}
		store, err := openStore(adapter.ID)
		if err != nil {
			return err
		}
		defer store.Close()

		value, found, err := store.Get(storeName, key)
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("No entry for %q in %s (absence is a signal, not an error)\n", key, storeName)
			return nil
		}
		fmt.Println(value)
		return nil
	},
}

func init() {
	getCmd.Flags().StringVar(&flagGetCorpus, "corpus", "", "corpus id (see 'lexgraph corpora')")
	getCmd.MarkFlagRequired("corpus")
}
