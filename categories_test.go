package tripledger

import "testing"

func TestAggregateCategories(t *testing.T) {
	categorized := func(amount float64, c Category) Expense {
		e := expense(amount, "a")
		e.Category = c
		return e
	}

	expenses := []Expense{
		categorized(100, Food),
		categorized(250, Accommodation),
		categorized(50, Food),
		categorized(30, Transport),
		categorized(20, Food),
	}

	got := AggregateCategories(expenses)

	want := []struct {
		category Category
		amount   float64
	}{
		{Food, 170},          // first seen first, even though accommodation is larger
		{Accommodation, 250}, //
		{Transport, 30},      //
	}

	if len(got) != len(want) {
		t.Fatalf("AggregateCategories() returned %d totals, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Category != w.category {
			t.Errorf("totals[%d].Category = %q, want %q", i, got[i].Category, w.category)
		}
		if !got[i].Amount.Equal(M(w.amount, "IDR")) {
			t.Errorf("totals[%d].Amount = %s, want %v", i, got[i].Amount.Amount(), w.amount)
		}
	}
}

func TestAggregateCategories_Empty(t *testing.T) {
	if got := AggregateCategories(nil); len(got) != 0 {
		t.Errorf("AggregateCategories(nil) = %v, want empty", got)
	}
}

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"food", Food, false},
		{"Accommodation", Accommodation, false},
		{" SHOPPING ", Shopping, false},
		{"住宿", Accommodation, false},
		{"餐饮", Food, false},
		{"交通", Transport, false},
		{"娱乐", Entertainment, false},
		{"购物", Shopping, false},
		{"其他", Other, false},
		{"souvenirs", Other, true}, // unknown degrades to Other
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCategory(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
