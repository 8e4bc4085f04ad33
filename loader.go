package tripledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ledgers live in a books directory, one JSON document per ledger, named by
// the ledger's opaque id: <books>/<id>.json.

// LedgerInfo is the lightweight listing entry for a stored ledger.
type LedgerInfo struct {
	ID          string
	Name        string
	LastUpdated int64
}

// ListLedgers scans the books directory and returns metadata for every
// stored ledger. A missing directory is an empty list, not an error.
func ListLedgers(path string) ([]LedgerInfo, error) {
	ledgers, err := FindLedgers(path, "")
	if err != nil {
		return nil, err
	}
	infos := make([]LedgerInfo, 0, len(ledgers))
	for _, l := range ledgers {
		infos = append(infos, LedgerInfo{ID: l.ID(), Name: l.Name(), LastUpdated: l.LastUpdated()})
	}
	return infos, nil
}

// FindLedger returns the unique ledger matching the query by id or name.
// An empty query matches any ledger, which resolves only when exactly one
// ledger is stored. In any other case it returns an error.
func FindLedger(path, query string) (*Ledger, error) {
	ledgers, err := FindLedgers(path, query)
	if err != nil {
		return nil, err
	}
	switch len(ledgers) {
	case 0:
		return nil, fmt.Errorf("could not find ledger %q", query)
	case 1:
		return ledgers[0], nil
	default:
		return nil, fmt.Errorf("multiple ledgers found for %q", query)
	}
}

// FindLedgers loads all ledgers whose id or name matches the query. An empty
// query loads everything.
func FindLedgers(path, query string) ([]*Ledger, error) {
	pattern := filepath.Join(path, "*.json")
	filenames, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("cannot scan books directory %q: %w", path, err)
	}

	var loaded []*Ledger
	for _, filename := range filenames {
		id := strings.TrimSuffix(filepath.Base(filename), ".json")
		ledger, err := loadLedgerFile(filename)
		if err != nil {
			return nil, err
		}
		if query == "" || id == query || ledger.Name() == query {
			loaded = append(loaded, ledger)
		}
	}
	return loaded, nil
}

// loadLedgerFile opens and decodes a single ledger document.
func loadLedgerFile(filename string) (*Ledger, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", filename, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", filename, err)
	}
	return ledger, nil
}

// SaveLedger writes a ledger to its document in the books directory,
// creating the directory as needed.
func SaveLedger(path string, ledger *Ledger) error {
	if ledger.ID() == "" {
		return fmt.Errorf("cannot save ledger with an empty id")
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("could not create books directory %q: %w", path, err)
	}

	filename := filepath.Join(path, ledger.ID()+".json")
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", filename, err)
	}
	defer f.Close()

	return EncodeLedger(f, ledger)
}

// DeleteLedger removes a stored ledger document by id.
func DeleteLedger(path, id string) error {
	filename := filepath.Join(path, id+".json")
	if err := os.Remove(filename); err != nil {
		return fmt.Errorf("could not delete ledger %q: %w", id, err)
	}
	return nil
}
