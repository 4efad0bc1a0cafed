package tutorial

import "testing"

func TestDecide(t *testing.T) {
	tests := []struct {
		name        string
		hasSeenHome bool
		hasSeenAR   bool
		want        Decision
	}{
		{"neither seen", false, false, ShowHomeTutorial},
		{"only home seen", true, false, ShowHomeTutorial},
		{"only ar seen", false, true, ShowHomeTutorial},
		{"both seen", true, true, SkipToAR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.hasSeenHome, tt.hasSeenAR)
			if got != tt.want {
				t.Errorf("Decide(%v, %v) = %v, want %v", tt.hasSeenHome, tt.hasSeenAR, got, tt.want)
			}
		})
	}
}

func TestDecisionString(t *testing.T) {
	if ShowHomeTutorial.String() != "show-home-tutorial" {
		t.Errorf("ShowHomeTutorial.String() = %q", ShowHomeTutorial.String())
	}
	if SkipToAR.String() != "skip-to-ar" {
		t.Errorf("SkipToAR.String() = %q", SkipToAR.String())
	}
}
