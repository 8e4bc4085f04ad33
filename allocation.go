package tripledger

// GroupStat holds a group's financial position in a ledger: what it paid,
// its headcount-proportional share of the total spend, and the difference.
// A positive balance means the group overpaid and should receive money; a
// negative balance means it underpaid and owes money.
type GroupStat struct {
	GroupID string
	Paid    Money
	Share   Money
	Balance Money
}

// Allocate computes per-group paid, share and balance figures.
//
// An expense whose payer does not match any group credits no group's paid
// total but still counts toward the grand total, so its amount is split
// proportionally across all shares. This is deliberate allocation policy:
// unattributed spend is everyone's burden and nobody's credit.
//
// A zero total headcount (no groups, or all groups empty) yields a zero
// share for every group, so each balance equals what the group paid. This
// is a degenerate-case policy, not an error.
//
// Allocate is pure: same inputs, same outputs, no mutation of arguments.
func Allocate(expenses []Expense, groups []Group) []GroupStat {
	currency := ""
	if len(expenses) > 0 {
		currency = expenses[0].Amount.Currency()
	}

	total := M(0, currency)
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	heads := 0
	for _, g := range groups {
		heads += g.Count
	}

	stats := make([]GroupStat, 0, len(groups))
	for _, g := range groups {
		paid := M(0, currency)
		for _, e := range expenses {
			if e.PayerID == g.ID {
				paid = paid.Add(e.Amount)
			}
		}

		share := M(0, currency)
		if heads > 0 {
			share = total.MulInt(g.Count).DivInt(heads)
		}

		stats = append(stats, GroupStat{
			GroupID: g.ID,
			Paid:    paid,
			Share:   share,
			Balance: paid.Sub(share),
		})
	}
	return stats
}
