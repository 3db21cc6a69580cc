package label

import "testing"

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want LocationTuple
	}{
		{"four segments", "A1_B2_C3_D4", LocationTuple{"A1", "B2", "C3", "D4"}},
		{"two segments", "A1_B2", LocationTuple{"A1", "B2", "", ""}},
		{"one segment", "A1", LocationTuple{"A1", "", "", ""}},
		{"empty", "", LocationTuple{"", "", "", ""}},
		{"overflow discarded", "A1_B2_C3_D4_E5", LocationTuple{"A1", "B2", "C3", "D4"}},
		{"long overflow discarded", "A_B_C_D_E_F_G", LocationTuple{"A", "B", "C", "D"}},
		{"empty middle segment", "A1__C3_D4", LocationTuple{"A1", "", "C3", "D4"}},
		{"trailing delimiter", "A1_B2_", LocationTuple{"A1", "B2", "", ""}},
		{"whitespace trimmed", " A1 _ B2 ", LocationTuple{"A1", "B2", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLocation(tt.in)
			if got != tt.want {
				t.Errorf("SplitLocation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
