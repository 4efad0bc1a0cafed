package tutorial

// Script is an ordered sequence of dialogue lines walked through one
// advance tap at a time.
type Script []string

// DefaultHomeScript is the first-run walkthrough shown before the scan
// screen is ever reached.
var DefaultHomeScript = Script{
	"Hey there, explorer! Welcome to Orbquest.",
	"Out in the world, hidden spheres cling to everyday objects.",
	"Point your camera at things around you and tap Scan to reveal them.",
	"Every object you discover earns you a sphere for your collection.",
	"Ready? Let's go find your first sphere!",
}

// DefaultARScript walks the user through the scan screen itself.
var DefaultARScript = Script{
	"This is your scanner. The camera feed fills the screen.",
	"Tap the Scan button to sweep the scene for objects.",
	"While scanning, a live description of the scene streams in.",
	"Spheres appear on anything the scanner recognizes. Tap to collect!",
	"That's everything. Happy hunting!",
}

// Len returns the number of lines in the script.
func (s Script) Len() int { return len(s) }

// Line returns the line at index i, or "" when out of range.
func (s Script) Line(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}
