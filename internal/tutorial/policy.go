package tutorial

// Decision is the navigation outcome of the gating policy.
type Decision int

const (
	// ShowHomeTutorial routes the user through the first-run walkthrough.
	ShowHomeTutorial Decision = iota
	// SkipToAR goes straight to the scan screen.
	SkipToAR
)

func (d Decision) String() string {
	if d == SkipToAR {
		return "skip-to-ar"
	}
	return "show-home-tutorial"
}

// Decide picks the entry screen from the two persisted tutorial flags.
// Only a user who has seen both tutorials skips ahead; any other
// combination, including the odd hasSeenAR-without-hasSeenHome state,
// replays the home tutorial.
func Decide(hasSeenHome, hasSeenAR bool) Decision {
	if hasSeenHome && hasSeenAR {
		return SkipToAR
	}
	return ShowHomeTutorial
}
