package tripledger

import (
	"errors"
	"fmt"
	"strings"
)

// Group sizing rules for user-authored ledgers. The computation itself
// tolerates any group count, including zero.
const (
	MinGroups = 2
	MaxGroups = 5
)

// Group is a participant unit with a headcount, used as the basis for
// proportional cost-sharing. The slice order of groups in a ledger is
// significant: the settlement matcher settles earlier groups first.
type Group struct {
	ID    string // unique, stable
	Name  string // display name, user-editable
	Count int    // headcount, at least 1
}

// Validate checks a group as entered by a user.
func (g Group) Validate() error {
	if g.ID == "" {
		return errors.New("group id is missing")
	}
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("group name is missing")
	}
	if g.Count < 1 {
		return fmt.Errorf("group %q headcount must be at least 1, got %d", g.Name, g.Count)
	}
	return nil
}
