package tripledger

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category classifies an expense for reporting purposes.
type Category string

const (
	Accommodation Category = "accommodation"
	Transport     Category = "transport"
	Food          Category = "food"
	Entertainment Category = "entertainment"
	Shopping      Category = "shopping"
	Other         Category = "other"
)

// Categories lists all categories in their display order.
var Categories = []Category{Accommodation, Transport, Food, Entertainment, Shopping, Other}

// legacyCategoryLabels maps the labels used by old exports to canonical categories.
var legacyCategoryLabels = map[string]Category{
	"住宿": Accommodation,
	"交通": Transport,
	"餐饮": Food,
	"娱乐": Entertainment,
	"购物": Shopping,
	"其他": Other,
}

func (c Category) String() string { return string(c) }

// Label returns a human readable name for the category.
func (c Category) Label() string {
	switch c {
	case Accommodation:
		return "Accommodation"
	case Transport:
		return "Transport"
	case Food:
		return "Food"
	case Entertainment:
		return "Entertainment"
	case Shopping:
		return "Shopping"
	case Other:
		return "Other"
	default:
		return "Unknown"
	}
}

// ParseCategory parses a string into a Category. It accepts canonical codes,
// display labels, and the labels found in legacy exports. Unknown values
// map to Other rather than failing, so old data always loads.
func ParseCategory(s string) (Category, error) {
	switch v := Category(strings.ToLower(strings.TrimSpace(s))); v {
	case Accommodation, Transport, Food, Entertainment, Shopping, Other:
		return v, nil
	}
	if c, ok := legacyCategoryLabels[strings.TrimSpace(s)]; ok {
		return c, nil
	}
	return Other, fmt.Errorf("unknown category: %q", s)
}

// Expense is a single shared expense recorded in the ledger's destination
// currency. Expenses are immutable once created; the only mutation a ledger
// supports is deletion.
type Expense struct {
	ID          string   // unique, assigned at creation
	Date        int64    // epoch millis, user-settable, need not be unique
	Description string   //
	Amount      Money    // non-negative, in the ledger's destination currency
	Category    Category //
	PayerID     string   // references a Group id
}

// Time returns the expense date as a time.Time.
func (e Expense) Time() time.Time { return time.UnixMilli(e.Date) }

// Validate checks an expense as entered by a user. The payer must resolve to
// one of the given groups: a dangling payer id is tolerated by computation
// but rejected at the data-entry boundary.
func (e Expense) Validate(groups []Group) error {
	if strings.TrimSpace(e.Description) == "" {
		return errors.New("description is missing")
	}
	if e.Date == 0 {
		return errors.New("date is missing")
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", e.Amount)
	}
	for _, g := range groups {
		if g.ID == e.PayerID {
			return nil
		}
	}
	return fmt.Errorf("payer %q is not a known group", e.PayerID)
}
