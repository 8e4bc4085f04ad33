package tripledger

// CategoryTotal is the summed spend of one category.
type CategoryTotal struct {
	Category Category
	Amount   Money
}

// AggregateCategories sums expenses by category, preserving first-seen
// category order so proportion charts stay stable across re-renders.
// Categories with no matching expense are omitted, not emitted as zero.
func AggregateCategories(expenses []Expense) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[Category]int)
	for _, e := range expenses {
		if i, ok := index[e.Category]; ok {
			totals[i].Amount = totals[i].Amount.Add(e.Amount)
			continue
		}
		index[e.Category] = len(totals)
		totals = append(totals, CategoryTotal{Category: e.Category, Amount: e.Amount})
	}
	return totals
}
