package pipeline

import (
	"fmt"

	"tally/internal/model"
	"tally/internal/source"
	"tally/internal/store"
)

// LoadOptions selects where the ledger comes from.
type LoadOptions struct {
	LedgerPath  string // explicit .csv/.xlsx file; bypasses the store
	MappingPath string // optional header-mapping file for ledger files
	DataDir     string // store directory override; empty uses the default
}

// LoadResult carries the loaded ledger and where it came from.
type LoadResult struct {
	Items     []model.LineItem
	Source    string // human-readable origin for status lines
	FromStore bool   // done toggles persist only for store-backed ledgers
	RowErrors []source.RowError
}

// Load resolves the ledger: an explicit file when given, the local store
// when it holds items, otherwise the built-in sample.
func Load(opts LoadOptions) (*LoadResult, error) {
	if opts.LedgerPath != "" {
		return loadFile(opts.LedgerPath, opts.MappingPath)
	}

	st, err := store.Open(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening ledger store: %w", err)
	}
	defer func() { _ = st.Close() }()

	n, err := st.Count()
	if err != nil {
		return nil, fmt.Errorf("counting ledger rows: %w", err)
	}
	if n == 0 {
		return &LoadResult{Items: source.Sample(), Source: "built-in sample"}, nil
	}

	items, err := st.LoadItems()
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	return &LoadResult{Items: items, Source: "imported ledger", FromStore: true}, nil
}

func loadFile(path, mappingPath string) (*LoadResult, error) {
	var mapping source.Mapping
	if mappingPath != "" {
		m, err := source.LoadMapping(mappingPath)
		if err != nil {
			return nil, err
		}
		mapping = m
	}

	res, err := source.ParseLedgerFile(path, mapping)
	if err != nil {
		return nil, err
	}
	return &LoadResult{
		Items:     res.Items,
		Source:    path,
		RowErrors: res.Errors,
	}, nil
}
