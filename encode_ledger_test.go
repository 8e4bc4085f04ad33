package tripledger

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeLedger_RoundTrip(t *testing.T) {
	l := NewLedger("Bali 2026")
	l.SetDestination("Bali")
	l.SetCurrencies("IDR", "CNY")
	if err := l.SetRate(M(2210.42, "").Amount()); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddExpense(Expense{Date: 1767000000000, Description: "villa", Amount: M(4500000, "IDR"), Category: Accommodation, PayerID: "f1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddExpense(Expense{Date: 1767100000000, Description: "scooter", Amount: M(150000, "IDR"), Category: Transport, PayerID: "f2"}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	got, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	if got.ID() != l.ID() {
		t.Errorf("id = %q, want %q", got.ID(), l.ID())
	}
	if got.Name() != "Bali 2026" || got.Destination() != "Bali" {
		t.Errorf("identity = %q/%q, want Bali 2026/Bali", got.Name(), got.Destination())
	}
	if got.Currency() != "IDR" || got.BaseCurrency() != "CNY" {
		t.Errorf("currencies = %q/%q, want IDR/CNY", got.Currency(), got.BaseCurrency())
	}
	if !got.Rate().Equal(l.Rate()) {
		t.Errorf("rate = %s, want %s", got.Rate(), l.Rate())
	}
	if got.LastUpdated() != l.LastUpdated() {
		t.Errorf("lastUpdated = %d, want %d", got.LastUpdated(), l.LastUpdated())
	}

	wantGroups := l.Groups()
	gotGroups := got.Groups()
	if len(gotGroups) != len(wantGroups) {
		t.Fatalf("groups = %d, want %d", len(gotGroups), len(wantGroups))
	}
	for i := range wantGroups {
		if gotGroups[i] != wantGroups[i] {
			t.Errorf("groups[%d] = %+v, want %+v", i, gotGroups[i], wantGroups[i])
		}
	}

	if got.NumExpenses() != 2 {
		t.Fatalf("expenses = %d, want 2", got.NumExpenses())
	}
	i := 0
	for e := range l.Expenses() {
		g := got.Expense(e.ID)
		if g == nil {
			t.Fatalf("expense %q lost in round trip", e.ID)
		}
		if g.Date != e.Date || g.Description != e.Description || g.Category != e.Category || g.PayerID != e.PayerID {
			t.Errorf("expense[%d] = %+v, want %+v", i, *g, e)
		}
		if !g.Amount.Equal(e.Amount) {
			t.Errorf("expense[%d] amount = %s, want %s", i, g.Amount.Amount(), e.Amount.Amount())
		}
		i++
	}
}

func TestDecodeLedger_UpgradesLegacyDocument(t *testing.T) {
	// A document written by the first version of the app: no groups list,
	// no currency codes, amountIDR, payer display names and localized
	// category labels.
	legacy := `{
	  "ledgerName": "我的巴厘岛账本",
	  "exchangeRate": 2200,
	  "family1Count": 4,
	  "family2Count": 2,
	  "lastUpdated": 1700000000000,
	  "expenses": [
	    {"id": "e1", "date": 1699000000000, "description": "hotel", "amountIDR": 600, "category": "住宿", "payer": "Family 1"},
	    {"id": "e2", "date": 1699100000000, "description": "lunch", "amountIDR": 90, "category": "餐饮", "payer": "Family 2"}
	  ]
	}`

	l, err := DecodeLedger(strings.NewReader(legacy))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	if l.Name() != "我的巴厘岛账本" {
		t.Errorf("name = %q", l.Name())
	}
	if l.Currency() != "IDR" || l.BaseCurrency() != "CNY" {
		t.Errorf("currencies = %q/%q, want inferred IDR/CNY", l.Currency(), l.BaseCurrency())
	}
	if l.ID() == "" {
		t.Errorf("legacy document did not get an id assigned")
	}

	gs := l.Groups()
	if len(gs) != 2 || gs[0].ID != "f1" || gs[0].Count != 4 || gs[1].ID != "f2" || gs[1].Count != 2 {
		t.Fatalf("groups = %+v, want f1(4), f2(2)", gs)
	}

	e1 := l.Expense("e1")
	if e1 == nil {
		t.Fatal("expense e1 missing")
	}
	if e1.PayerID != "f1" {
		t.Errorf("e1 payerId = %q, want f1", e1.PayerID)
	}
	if e1.Category != Accommodation {
		t.Errorf("e1 category = %q, want accommodation", e1.Category)
	}
	if !e1.Amount.Equal(M(600, "IDR")) {
		t.Errorf("e1 amount = %s, want 600", e1.Amount.Amount())
	}

	// The upgraded snapshot computes like any other: the scenario from the
	// 4-vs-2 headcount split.
	stats := l.GroupStats()
	if !stats[0].Share.Equal(M(460, "IDR")) { // 690 total * 4/6
		t.Errorf("f1 share = %s, want 460", stats[0].Share.Amount())
	}

	// Saving a legacy document writes the canonical shape.
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, field := range []string{`"groups"`, `"payerId"`, `"amount"`, `"currency"`} {
		if !strings.Contains(out, field) {
			t.Errorf("canonical output missing %s", field)
		}
	}
	for _, field := range []string{"amountIDR", "family1Count", `"payer"`} {
		if strings.Contains(out, field) {
			t.Errorf("canonical output still carries legacy field %s", field)
		}
	}
}

func TestDecodeLedger_BadInput(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("not json")); err == nil {
		t.Errorf("DecodeLedger() on garbage succeeded, want error")
	}
}
