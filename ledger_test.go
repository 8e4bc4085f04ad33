package tripledger

import (
	"strings"
	"testing"
)

func TestLedger_AddExpense(t *testing.T) {
	testCases := []struct {
		name    string
		expense Expense
		wantErr string
	}{
		{
			name:    "valid expense",
			expense: Expense{Date: 1700000000000, Description: "dinner", Amount: M(120000, "IDR"), Category: Food, PayerID: "f1"},
		},
		{
			name:    "missing description",
			expense: Expense{Date: 1700000000000, Description: "  ", Amount: M(100, "IDR"), PayerID: "f1"},
			wantErr: "description",
		},
		{
			name:    "missing date",
			expense: Expense{Description: "taxi", Amount: M(100, "IDR"), PayerID: "f1"},
			wantErr: "date",
		},
		{
			name:    "zero amount",
			expense: Expense{Date: 1, Description: "taxi", Amount: M(0, "IDR"), PayerID: "f1"},
			wantErr: "amount",
		},
		{
			name:    "negative amount",
			expense: Expense{Date: 1, Description: "taxi", Amount: M(-5, "IDR"), PayerID: "f1"},
			wantErr: "amount",
		},
		{
			name:    "unknown payer",
			expense: Expense{Date: 1, Description: "taxi", Amount: M(100, "IDR"), PayerID: "f9"},
			wantErr: "payer",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger("test")
			got, err := l.AddExpense(tc.expense)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("AddExpense() error = %v, want containing %q", err, tc.wantErr)
				}
				if l.NumExpenses() != 0 {
					t.Errorf("invalid expense was stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddExpense() error = %v", err)
			}
			if got.ID == "" {
				t.Errorf("AddExpense() did not assign an id")
			}
			if l.NumExpenses() != 1 {
				t.Errorf("NumExpenses() = %d, want 1", l.NumExpenses())
			}
		})
	}
}

func TestLedger_RemoveExpense(t *testing.T) {
	l := NewLedger("test")
	e, err := l.AddExpense(Expense{Date: 1, Description: "snack", Amount: M(10, "IDR"), Category: Food, PayerID: "f1"})
	if err != nil {
		t.Fatal(err)
	}

	if !l.RemoveExpense(e.ID) {
		t.Errorf("RemoveExpense(%q) = false, want true", e.ID)
	}
	if l.RemoveExpense(e.ID) {
		t.Errorf("RemoveExpense(%q) second call = true, want false", e.ID)
	}
	if l.NumExpenses() != 0 {
		t.Errorf("NumExpenses() = %d, want 0", l.NumExpenses())
	}
}

func TestLedger_GroupLimits(t *testing.T) {
	l := NewLedger("test")

	// Default ledger has 2 groups; grow to the maximum of 5.
	for i := 0; i < 3; i++ {
		if _, err := l.AddGroup("extra", 1); err != nil {
			t.Fatalf("AddGroup() #%d error = %v", i, err)
		}
	}
	if _, err := l.AddGroup("one too many", 1); err == nil {
		t.Errorf("AddGroup() beyond %d groups succeeded, want error", MaxGroups)
	}

	// Shrink back to the minimum of 2.
	for _, g := range l.Groups()[2:] {
		if err := l.RemoveGroup(g.ID); err != nil {
			t.Fatalf("RemoveGroup(%q) error = %v", g.ID, err)
		}
	}
	if err := l.RemoveGroup(l.Groups()[0].ID); err == nil {
		t.Errorf("RemoveGroup() below %d groups succeeded, want error", MinGroups)
	}
}

func TestLedger_RemovedGroupPayerFallsBack(t *testing.T) {
	l := NewLedger("test")
	g, err := l.AddGroup("Family 3", 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddExpense(Expense{Date: 1, Description: "boat", Amount: M(300, "IDR"), Category: Transport, PayerID: g.ID}); err != nil {
		t.Fatal(err)
	}
	if err := l.RemoveGroup(g.ID); err != nil {
		t.Fatal(err)
	}

	// The expense survives, resolves to "unknown", and computation holds.
	if l.NumExpenses() != 1 {
		t.Fatalf("NumExpenses() = %d, want 1", l.NumExpenses())
	}
	if name := l.PayerName(g.ID); name != "unknown" {
		t.Errorf("PayerName(%q) = %q, want %q", g.ID, name, "unknown")
	}
	stats := l.GroupStats()
	for _, s := range stats {
		if !s.Paid.IsZero() {
			t.Errorf("group %q credited with paid %s for a removed payer", s.GroupID, s.Paid.Amount())
		}
		// total 300 over 6 heads: f1 share 200, f2 share 100
	}
	if !stats[0].Share.Equal(M(200, "IDR")) || !stats[1].Share.Equal(M(100, "IDR")) {
		t.Errorf("shares = %s, %s, want 200, 100", stats[0].Share.Amount(), stats[1].Share.Amount())
	}
}

func TestLedger_GroupMutations(t *testing.T) {
	l := NewLedger("test")
	id := l.Groups()[0].ID

	if err := l.RenameGroup(id, "The Smiths"); err != nil {
		t.Fatalf("RenameGroup() error = %v", err)
	}
	if got := l.Group(id).Name; got != "The Smiths" {
		t.Errorf("group name = %q, want %q", got, "The Smiths")
	}

	if err := l.SetGroupCount(id, 7); err != nil {
		t.Fatalf("SetGroupCount() error = %v", err)
	}
	if err := l.SetGroupCount(id, 0); err == nil {
		t.Errorf("SetGroupCount(0) succeeded, want error")
	}
	if got := l.Group(id).Count; got != 7 {
		t.Errorf("group count = %d after failed update, want 7", got)
	}

	if err := l.RenameGroup("nope", "x"); err == nil {
		t.Errorf("RenameGroup() on unknown group succeeded, want error")
	}
}

func TestLedger_SetRate(t *testing.T) {
	l := NewLedger("test")
	if err := l.SetRate(M(0, "").Amount()); err == nil {
		t.Errorf("SetRate(0) succeeded, want error")
	}
	if err := l.SetRate(M(2150.5, "").Amount()); err != nil {
		t.Errorf("SetRate(2150.5) error = %v", err)
	}
	if !l.Rate().Equal(M(2150.5, "").Amount()) {
		t.Errorf("Rate() = %s, want 2150.5", l.Rate())
	}
}
