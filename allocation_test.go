package tripledger

import (
	"math/rand"
	"testing"
)

func groups(counts ...int) []Group {
	gs := make([]Group, 0, len(counts))
	for i, c := range counts {
		gs = append(gs, Group{ID: gid(i), Name: gname(i), Count: c})
	}
	return gs
}

func gid(i int) string   { return string(rune('a' + i)) }
func gname(i int) string { return "Group " + string(rune('A'+i)) }

func expense(amount float64, payer string) Expense {
	return Expense{ID: "x", Date: 1, Description: "test", Amount: M(amount, "IDR"), PayerID: payer, Category: Other}
}

func TestAllocate(t *testing.T) {
	testCases := []struct {
		name     string
		expenses []Expense
		groups   []Group
		want     map[string][3]float64 // groupID -> paid, share, balance
	}{
		{
			name:     "two groups one expense",
			expenses: []Expense{expense(600, "a")},
			groups:   groups(4, 2),
			want: map[string][3]float64{
				"a": {600, 400, 200},
				"b": {0, 200, -200},
			},
		},
		{
			name:     "three equal groups",
			expenses: []Expense{expense(100, "a"), expense(50, "b"), expense(0, "c")},
			groups:   groups(1, 1, 1),
			want: map[string][3]float64{
				"a": {100, 50, 50},
				"b": {50, 50, 0},
				"c": {0, 50, -50},
			},
		},
		{
			name:     "unattributed expense still splits",
			expenses: []Expense{expense(90, "nobody")},
			groups:   groups(1, 1),
			want: map[string][3]float64{
				"a": {0, 45, -45},
				"b": {0, 45, -45},
			},
		},
		{
			name:     "zero headcount yields zero shares",
			expenses: []Expense{expense(100, "a")},
			groups:   nil,
			want:     map[string][3]float64{},
		},
		{
			name:     "all groups empty of people",
			expenses: []Expense{expense(80, "a")},
			groups:   groups(0, 0),
			want: map[string][3]float64{
				"a": {80, 0, 80},
				"b": {0, 0, 0},
			},
		},
		{
			name:     "no expenses",
			expenses: nil,
			groups:   groups(2, 3),
			want: map[string][3]float64{
				"a": {0, 0, 0},
				"b": {0, 0, 0},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := Allocate(tc.expenses, tc.groups)
			if len(stats) != len(tc.groups) {
				t.Fatalf("Allocate() returned %d stats, want %d", len(stats), len(tc.groups))
			}
			for _, s := range stats {
				want, ok := tc.want[s.GroupID]
				if !ok {
					t.Fatalf("unexpected group %q in stats", s.GroupID)
				}
				if !s.Paid.Equal(M(want[0], s.Paid.Currency())) {
					t.Errorf("group %q paid = %s, want %v", s.GroupID, s.Paid.Amount(), want[0])
				}
				if !s.Share.Equal(M(want[1], s.Share.Currency())) {
					t.Errorf("group %q share = %s, want %v", s.GroupID, s.Share.Amount(), want[1])
				}
				if !s.Balance.Equal(M(want[2], s.Balance.Currency())) {
					t.Errorf("group %q balance = %s, want %v", s.GroupID, s.Balance.Amount(), want[2])
				}
			}
		})
	}
}

func TestAllocate_ZeroSum(t *testing.T) {
	// Balances always sum to ~0: sum(paid) = total = sum(share).
	rng := rand.New(rand.NewSource(42))
	gs := groups(3, 1, 5, 2)
	var expenses []Expense
	for i := 0; i < 50; i++ {
		payer := gid(rng.Intn(5)) // sometimes a dangling payer "e"
		expenses = append(expenses, expense(float64(rng.Intn(100000))/100, payer))
	}

	sum := M(0, "IDR")
	paid := M(0, "IDR")
	for _, s := range Allocate(expenses, gs) {
		sum = sum.Add(s.Balance)
		paid = paid.Add(s.Paid)
	}

	total := M(0, "IDR")
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	tolerance := M(0.000001, "IDR")
	residual := sum.Add(total.Sub(paid)) // unattributed spend shows up as negative balance sum
	if residual.Abs().GreaterThan(tolerance) {
		t.Errorf("balance sum plus unattributed spend = %s, want ~0", residual.Amount())
	}
}

func TestAllocate_OrderIndependent(t *testing.T) {
	gs := groups(4, 2, 1)
	expenses := []Expense{
		expense(123.45, "a"),
		expense(67.89, "b"),
		expense(1000, "c"),
		expense(0.01, "a"),
	}
	want := Allocate(expenses, gs)

	shuffled := []Expense{expenses[2], expenses[0], expenses[3], expenses[1]}
	got := Allocate(shuffled, gs)

	for i := range want {
		if !got[i].Paid.Equal(want[i].Paid) || !got[i].Share.Equal(want[i].Share) || !got[i].Balance.Equal(want[i].Balance) {
			t.Errorf("group %q stats changed with expense order: got %+v, want %+v", want[i].GroupID, got[i], want[i])
		}
	}
}
