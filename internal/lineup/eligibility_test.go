package lineup

import "testing"

func TestIsEligibleRuleTable(t *testing.T) {
	cases := []struct {
		slot      string
		positions []string
		want      bool
	}{
		{"BN", []string{"QB"}, false},
		{"bench", []string{"RB"}, false},
		{"IR", nil, false},
		{"RES", []string{"WR"}, false},
		{"TAXI", []string{"TE"}, false},
		{"QB", []string{"QB"}, true},
		{"QB", []string{"RB"}, false},
		{"rb", []string{"RB"}, true},
		{"WR", []string{"WR", "RB"}, true},
		{"TE", []string{"WR"}, false},
		{"K", []string{"K"}, true},
		{"K", nil, false},
		{"DEF", []string{"DST"}, true},
		{"DST", []string{"DEF"}, true},
		{"DEF", []string{"LB"}, false},
		{"FLEX", []string{"TE"}, true},
		{"FLEX", []string{"QB"}, false},
		{"WRRB_FLEX", []string{"RB"}, true},
		{"RBWR_FLEX", []string{"TE"}, false},
		{"REC_FLEX", []string{"TE"}, true},
		{"WRTE_FLEX", []string{"RB"}, false},
		{"SUPER_FLEX", []string{"QB"}, true},
		{"SFLEX", []string{"K"}, false},
		{"super_flex", []string{"WR"}, true},
		{"IDP_FLEX", nil, true},
		{"PG", []string{"C"}, true},
		{"", nil, true},
	}

	for _, tc := range cases {
		if got := IsEligible(tc.slot, tc.positions); got != tc.want {
			t.Fatalf("IsEligible(%q, %v) = %v, want %v", tc.slot, tc.positions, got, tc.want)
		}
	}
}

func TestIsBenchSlot(t *testing.T) {
	for _, slot := range []string{"BN", "bn", "Bench", "IR", "RES", "taxi"} {
		if !IsBenchSlot(slot) {
			t.Fatalf("expected %q to be a bench slot", slot)
		}
	}
	for _, slot := range []string{"QB", "FLEX", "", "BNX"} {
		if IsBenchSlot(slot) {
			t.Fatalf("expected %q not to be a bench slot", slot)
		}
	}
}
