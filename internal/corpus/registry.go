package corpus

import (
	"fmt"
	"sort"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Registered corpus ids.
const (
	RevisedCode  = "revised_code"
	AdminCode    = "admin_code"
	Constitution = "constitution"
	CaseLaw      = "case_law"
)

// registry holds every configured adapter, keyed by corpus id. Pattern
// expressions are compiled at package init, so a malformed pattern fails
// the process before any document is processed.
var registry = map[string]Adapter{
	RevisedCode:  revisedCodeAdapter,
	AdminCode:    adminCodeAdapter,
	Constitution: constitutionAdapter,
	CaseLaw:      caseLawAdapter,
}

func init() {
	for id, a := range registry {
		if err := a.Validate(); err != nil {
			panic(fmt.Sprintf("corpus adapter %q: %v", id, err))
		}
	}
}

// Lookup returns the adapter for the given corpus id.
func Lookup(corpusID string) (Adapter, error) {
	a, ok := registry[corpusID]
	if !ok {
		return Adapter{}, fmt.Errorf("%w: %q", types.ErrUnknownCorpus, corpusID)
	}
	return a, nil
}

// IDs returns the registered corpus ids in lexicographic order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
