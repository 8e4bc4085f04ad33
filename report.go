package tripledger

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Report is the single assembled view of a ledger: identity fields, the
// allocation figures, the settlement plan, the category totals, and the
// expense rows, all with payer names resolved and base-currency equivalents
// attached. Every consumer (terminal summary, markdown export, JSON backup)
// reads from the same Report, so they can never disagree on the numbers.
type Report struct {
	LedgerID     string
	Name         string
	Destination  string
	Currency     string
	BaseCurrency string
	Rate         decimal.Decimal
	GeneratedAt  time.Time

	Total     Money // grand total in the destination currency
	TotalBase Money // the same, in the base currency

	Groups      []GroupRow
	Settlements []SettlementRow
	Categories  []CategoryTotal
	Expenses    []ExpenseRow
}

// GroupRow is a group's allocation figures with identity attached.
type GroupRow struct {
	Group
	Paid    Money
	Share   Money
	Balance Money
}

// SettlementRow is a transfer with resolved names and a base equivalent.
type SettlementRow struct {
	Transfer
	FromName   string
	ToName     string
	AmountBase Money
}

// ExpenseRow is an expense with the payer name resolved and a base equivalent.
type ExpenseRow struct {
	Expense
	PayerName  string
	AmountBase Money
}

// NewReport computes a report from a ledger snapshot. The computation is a
// fresh full pass over the ledger every time; there is no incremental state
// to invalidate.
func NewReport(l *Ledger) *Report {
	stats := l.GroupStats()

	r := &Report{
		LedgerID:     l.ID(),
		Name:         l.Name(),
		Destination:  l.Destination(),
		Currency:     l.Currency(),
		BaseCurrency: l.BaseCurrency(),
		Rate:         l.Rate(),
		GeneratedAt:  time.Now(),
		Total:        l.Total(),
		Categories:   l.CategoryTotals(),
	}
	r.TotalBase = r.Total.Convert(r.Rate, r.BaseCurrency)

	for i, g := range l.Groups() {
		r.Groups = append(r.Groups, GroupRow{
			Group:   g,
			Paid:    stats[i].Paid,
			Share:   stats[i].Share,
			Balance: stats[i].Balance,
		})
	}

	for _, t := range Settle(stats, DefaultTolerance(l.Currency())) {
		r.Settlements = append(r.Settlements, SettlementRow{
			Transfer:   t,
			FromName:   l.PayerName(t.FromID),
			ToName:     l.PayerName(t.ToID),
			AmountBase: t.Amount.Convert(r.Rate, r.BaseCurrency),
		})
	}

	for e := range l.Expenses() {
		r.Expenses = append(r.Expenses, ExpenseRow{
			Expense:    e,
			PayerName:  l.PayerName(e.PayerID),
			AmountBase: e.Amount.Convert(r.Rate, r.BaseCurrency),
		})
	}
	// Reports show expenses chronologically; the ledger keeps insertion order.
	slices.SortStableFunc(r.Expenses, func(a, b ExpenseRow) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		default:
			return 0
		}
	})

	return r
}

// Settled reports whether all balances are within tolerance, i.e. the plan
// is empty and no money needs to move.
func (r *Report) Settled() bool { return len(r.Settlements) == 0 }
