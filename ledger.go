package tripledger

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Default ledger settings for a fresh ledger, matching the typical
// CNY-at-home, IDR-on-trip setup the application started from.
const (
	DefaultDestinationCurrency = "IDR"
	DefaultBaseCurrency        = "CNY"
	defaultRate                = 2200
)

// Ledger is a trip's book of shared expenses: the participant groups, the
// expenses they logged in the destination currency, and the exchange rate
// used for secondary display in the base currency.
//
// A Ledger is the unit of persistence. Each ledger is addressable by an
// opaque id; multiple ledgers may coexist in a books directory.
type Ledger struct {
	id          string
	name        string
	destination string // display label for the trip destination
	currency    string // destination currency code, expenses are recorded in it
	baseCur     string // the currency users think of their money in at home
	rate        decimal.Decimal
	groups      []Group
	expenses    []Expense
	lastUpdated int64 // epoch millis of the last mutation
}

// NewLedger creates a ledger with two default groups, ready for expense entry.
func NewLedger(name string) *Ledger {
	return &Ledger{
		id:          NewLedgerID(),
		name:        name,
		currency:    DefaultDestinationCurrency,
		baseCur:     DefaultBaseCurrency,
		rate:        decimal.NewFromInt(defaultRate),
		groups: []Group{
			{ID: "f1", Name: "Family 1", Count: 4},
			{ID: "f2", Name: "Family 2", Count: 2},
		},
		expenses:    make([]Expense, 0),
		lastUpdated: time.Now().UnixMilli(),
	}
}

// NewLedgerID returns a fresh opaque ledger id.
func NewLedgerID() string { return uuid.NewString() }

func (l *Ledger) ID() string            { return l.id }
func (l *Ledger) Name() string          { return l.name }
func (l *Ledger) Destination() string   { return l.destination }
func (l *Ledger) Currency() string      { return l.currency }
func (l *Ledger) BaseCurrency() string  { return l.baseCur }
func (l *Ledger) Rate() decimal.Decimal { return l.rate }
func (l *Ledger) LastUpdated() int64    { return l.lastUpdated }

// Groups returns a copy of the group list in settlement order.
func (l *Ledger) Groups() []Group { return slices.Clone(l.groups) }

// Group returns the group with this id, or nil if unknown. Expenses may
// reference a group that was deleted afterwards; callers must treat a nil
// result as the "unknown" payer, never as an error.
func (l *Ledger) Group(id string) *Group {
	for i := range l.groups {
		if l.groups[i].ID == id {
			return &l.groups[i]
		}
	}
	return nil
}

// PayerName resolves a payer id to a display name, falling back to "unknown".
func (l *Ledger) PayerName(id string) string {
	if g := l.Group(id); g != nil {
		return g.Name
	}
	return "unknown"
}

func (l *Ledger) touch() { l.lastUpdated = time.Now().UnixMilli() }

// SetID re-identifies the ledger, e.g. when importing a backup as a copy.
func (l *Ledger) SetID(id string) {
	l.id = id
	l.touch()
}

// SetName renames the ledger.
func (l *Ledger) SetName(name string) {
	l.name = name
	l.touch()
}

// SetDestination updates the destination display label.
func (l *Ledger) SetDestination(label string) {
	l.destination = label
	l.touch()
}

// SetCurrencies updates the destination and base currency codes. Empty
// arguments leave the corresponding code unchanged.
func (l *Ledger) SetCurrencies(destination, base string) {
	if destination != "" {
		l.currency = destination
	}
	if base != "" {
		l.baseCur = base
	}
	l.touch()
}

// SetRate updates the exchange rate (destination units per base unit).
func (l *Ledger) SetRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return fmt.Errorf("exchange rate must be positive, got %s", rate)
	}
	l.rate = rate
	l.touch()
	return nil
}

// AddExpense validates and appends an expense, assigning it a fresh id if
// it has none. Insertion order is preserved.
func (l *Ledger) AddExpense(e Expense) (Expense, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Amount.Currency() == "" {
		e.Amount = M(e.Amount.Amount(), l.currency)
	}
	if err := e.Validate(l.groups); err != nil {
		return Expense{}, fmt.Errorf("invalid expense: %w", err)
	}
	l.expenses = append(l.expenses, e)
	l.touch()
	return e, nil
}

// RemoveExpense deletes the expense with this id. It reports whether an
// expense was removed.
func (l *Ledger) RemoveExpense(id string) bool {
	for i, e := range l.expenses {
		if e.ID == id {
			l.expenses = slices.Delete(l.expenses, i, i+1)
			l.touch()
			return true
		}
	}
	return false
}

// ClearExpenses removes all expenses, keeping groups and settings.
func (l *Ledger) ClearExpenses() {
	l.expenses = l.expenses[:0]
	l.touch()
}

// Expenses iterates over expenses in insertion order.
func (l *Ledger) Expenses() iter.Seq[Expense] {
	return func(yield func(Expense) bool) {
		for _, e := range l.expenses {
			if !yield(e) {
				return
			}
		}
	}
}

// Expense returns the expense with this id, or nil if unknown.
func (l *Ledger) Expense(id string) *Expense {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			return &l.expenses[i]
		}
	}
	return nil
}

// NumExpenses returns the number of recorded expenses.
func (l *Ledger) NumExpenses() int { return len(l.expenses) }

// Total sums all expense amounts in the destination currency.
func (l *Ledger) Total() Money {
	total := M(decimal.Zero, l.currency)
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// AddGroup appends a new participant group.
func (l *Ledger) AddGroup(name string, count int) (Group, error) {
	if len(l.groups) >= MaxGroups {
		return Group{}, fmt.Errorf("cannot have more than %d groups", MaxGroups)
	}
	g := Group{ID: uuid.NewString(), Name: name, Count: count}
	if err := g.Validate(); err != nil {
		return Group{}, err
	}
	l.groups = append(l.groups, g)
	l.touch()
	return g, nil
}

// RemoveGroup deletes a group. Expenses paid by the removed group keep their
// payer id; they resolve to "unknown" from then on and contribute to no
// group's paid total, while their amounts still count toward every share.
func (l *Ledger) RemoveGroup(id string) error {
	if len(l.groups) <= MinGroups {
		return fmt.Errorf("cannot have fewer than %d groups", MinGroups)
	}
	for i, g := range l.groups {
		if g.ID == id {
			l.groups = slices.Delete(l.groups, i, i+1)
			l.touch()
			return nil
		}
	}
	return fmt.Errorf("unknown group %q", id)
}

// RenameGroup updates a group's display name.
func (l *Ledger) RenameGroup(id, name string) error {
	g := l.Group(id)
	if g == nil {
		return fmt.Errorf("unknown group %q", id)
	}
	g.Name = name
	if err := g.Validate(); err != nil {
		return err
	}
	l.touch()
	return nil
}

// SetGroupCount updates a group's headcount.
func (l *Ledger) SetGroupCount(id string, count int) error {
	g := l.Group(id)
	if g == nil {
		return fmt.Errorf("unknown group %q", id)
	}
	old := g.Count
	g.Count = count
	if err := g.Validate(); err != nil {
		g.Count = old
		return err
	}
	l.touch()
	return nil
}

// GroupStats computes the per-group paid, share and balance figures from the
// current snapshot. See Allocate.
func (l *Ledger) GroupStats() []GroupStat {
	return Allocate(l.expenses, l.groups)
}

// Settlements computes the transfer plan that zeroes all balances. See Settle.
func (l *Ledger) Settlements() []Transfer {
	return Settle(l.GroupStats(), DefaultTolerance(l.currency))
}

// CategoryTotals sums expenses by category in first-seen order.
func (l *Ledger) CategoryTotals() []CategoryTotal {
	return AggregateCategories(l.expenses)
}
