package tripledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// A ledger persists as one JSON document. Old documents predate groups and
// currency codes: they carry family1Count/family2Count instead of a groups
// list, amountIDR instead of amount, and a payer display name instead of a
// payerId. Decoding normalizes all of that in one place, so the rest of the
// package only ever sees the canonical shape.

// jexpense is the on-disk expense shape, legacy fields included.
type jexpense struct {
	ID          string          `json:"id"`
	Date        int64           `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	PayerID     string          `json:"payerId"`

	// legacy fields
	AmountIDR decimal.Decimal `json:"amountIDR"`
	Payer     string          `json:"payer"`
}

// jgroup is the on-disk group shape.
type jgroup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// jledger is the on-disk ledger shape, legacy fields included.
type jledger struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Destination  string          `json:"destination"`
	Currency     string          `json:"currency"`
	BaseCurrency string          `json:"baseCurrency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	LastUpdated  int64           `json:"lastUpdated"`
	Groups       []jgroup        `json:"groups"`
	Expenses     []jexpense      `json:"expenses"`

	// legacy fields
	LedgerName   string `json:"ledgerName"`
	Family1Count int    `json:"family1Count"`
	Family2Count int    `json:"family2Count"`
}

// upgrade converts a raw on-disk document, legacy or canonical, into its
// canonical form. It never fails: legacy data always loads.
func upgrade(j *jledger) {
	if j.Name == "" {
		j.Name = j.LedgerName
	}
	if j.Currency == "" {
		j.Currency = DefaultDestinationCurrency
	}
	if j.BaseCurrency == "" {
		j.BaseCurrency = DefaultBaseCurrency
	}
	if len(j.Groups) == 0 {
		// Old documents only knew two families, identified by their counts.
		f1, f2 := j.Family1Count, j.Family2Count
		if f1 < 1 {
			f1 = 1
		}
		if f2 < 1 {
			f2 = 1
		}
		j.Groups = []jgroup{
			{ID: "f1", Name: "Family 1", Count: f1},
			{ID: "f2", Name: "Family 2", Count: f2},
		}
	}
	for i := range j.Expenses {
		e := &j.Expenses[i]
		if e.Amount.IsZero() && !e.AmountIDR.IsZero() {
			e.Amount = e.AmountIDR
		}
		if e.PayerID == "" && e.Payer != "" {
			// Old expenses referenced families by display name.
			switch e.Payer {
			case "Family 1":
				e.PayerID = "f1"
			case "Family 2":
				e.PayerID = "f2"
			default:
				e.PayerID = e.Payer
			}
		}
	}
}

// DecodeLedger reads a ledger snapshot from a JSON document, upgrading
// legacy shapes to the canonical one.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	var j jledger
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("could not parse ledger document: %w", err)
	}
	upgrade(&j)

	l := &Ledger{
		id:          j.ID,
		name:        j.Name,
		destination: j.Destination,
		currency:    j.Currency,
		baseCur:     j.BaseCurrency,
		rate:        j.ExchangeRate,
		lastUpdated: j.LastUpdated,
	}
	if l.id == "" {
		l.id = NewLedgerID()
	}
	if !l.rate.IsPositive() {
		l.rate = decimal.NewFromInt(defaultRate)
	}

	for _, g := range j.Groups {
		l.groups = append(l.groups, Group{ID: g.ID, Name: g.Name, Count: g.Count})
	}
	for _, e := range j.Expenses {
		// Unknown categories degrade to Other instead of failing the load.
		category, _ := ParseCategory(e.Category)
		l.expenses = append(l.expenses, Expense{
			ID:          e.ID,
			Date:        e.Date,
			Description: e.Description,
			Amount:      M(e.Amount, l.currency),
			Category:    category,
			PayerID:     e.PayerID,
		})
	}
	return l, nil
}

// EncodeLedger writes the ledger as an indented JSON document with a
// canonical field order, so saved files diff cleanly under version control.
func EncodeLedger(w io.Writer, l *Ledger) error {
	var doc jsonObjectWriter
	doc.Append("id", l.id)
	doc.Append("name", l.name)
	doc.Optional("destination", l.destination)
	doc.Append("currency", l.currency)
	doc.Append("baseCurrency", l.baseCur)
	doc.Append("exchangeRate", l.rate)
	doc.Append("lastUpdated", l.lastUpdated)

	groups := make([]json.RawMessage, 0, len(l.groups))
	for _, g := range l.groups {
		var gw jsonObjectWriter
		gw.Append("id", g.ID)
		gw.Append("name", g.Name)
		gw.Append("count", g.Count)
		raw, err := gw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal group %q: %w", g.ID, err)
		}
		groups = append(groups, raw)
	}
	doc.Append("groups", groups)

	expenses := make([]json.RawMessage, 0, len(l.expenses))
	for _, e := range l.expenses {
		var ew jsonObjectWriter
		ew.Append("id", e.ID)
		ew.Append("date", e.Date)
		ew.Append("description", e.Description)
		ew.Append("amount", e.Amount.Amount())
		ew.Append("category", e.Category)
		ew.Append("payerId", e.PayerID)
		raw, err := ew.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal expense %q: %w", e.ID, err)
		}
		expenses = append(expenses, raw)
	}
	doc.Append("expenses", expenses)

	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return fmt.Errorf("failed to indent ledger document: %w", err)
	}
	indented.WriteByte('\n')

	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}
