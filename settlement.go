package tripledger

// Transfer is one pairwise payment of the settlement plan.
type Transfer struct {
	FromID string // the debtor group
	ToID   string // the creditor group
	Amount Money
}

// DefaultTolerance is the absolute balance below which a group counts as
// settled: one hundredth of a currency unit, enough to absorb the rounding
// noise of proportional shares. For zero-decimal currencies a coarser
// tolerance may suit better; Settle takes it as a parameter for that reason.
func DefaultTolerance(currency string) Money { return M(0.01, currency) }

// Settle turns group balances into an ordered list of transfers that drives
// every balance to within tolerance of zero.
//
// Groups are partitioned into debtors and creditors preserving their
// original order; no sorting by magnitude. Two different orderings of the
// same groups can produce different, equally valid plans, and committing to
// source-list order keeps the result reproducible: groups earlier in the
// ledger's group list are settled first.
//
// The sweep walks both partitions at once, each step transferring
// min(|debt|, credit) from the current debtor to the current creditor and
// advancing whichever side reaches zero. It stops when either partition is
// exhausted. Balances derive from a zero-sum set, so neither side should be
// left holding more than the tolerance; when fed a non-zero-sum input the
// sweep still terminates with a best-effort partial plan.
func Settle(stats []GroupStat, tolerance Money) []Transfer {
	var debtors, creditors []GroupStat
	for _, s := range stats {
		switch {
		case s.Balance.LessThan(tolerance.Neg()):
			debtors = append(debtors, s)
		case s.Balance.GreaterThan(tolerance):
			creditors = append(creditors, s)
		}
	}

	transfers := make([]Transfer, 0)
	d, c := 0, 0
	for d < len(debtors) && c < len(creditors) {
		debtor := &debtors[d]
		creditor := &creditors[c]

		amount := debtor.Balance.Abs().Min(creditor.Balance)
		transfers = append(transfers, Transfer{
			FromID: debtor.GroupID,
			ToID:   creditor.GroupID,
			Amount: amount,
		})

		debtor.Balance = debtor.Balance.Add(amount)
		creditor.Balance = creditor.Balance.Sub(amount)

		if debtor.Balance.Abs().LessThan(tolerance) {
			d++
		}
		if creditor.Balance.Abs().LessThan(tolerance) {
			c++
		}
	}
	return transfers
}
