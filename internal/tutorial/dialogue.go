package tutorial

// Dialogue steps through a script one advance tap at a time. The index
// is clamped to the script: reaching the last line is the terminal
// position, and advancing from there dismisses the dialogue instead of
// running past the end. Dismiss closes it from any position.
type Dialogue struct {
	script    Script
	index     int
	dismissed bool
}

// NewDialogue starts a dialogue at the first line of script.
func NewDialogue(script Script) *Dialogue {
	return &Dialogue{script: script}
}

// Advance moves to the next line. On the last line it dismisses instead,
// and reports true when that happened. After dismissal it is a no-op.
func (d *Dialogue) Advance() (dismissed bool) {
	if d.dismissed {
		return false
	}
	if d.index >= len(d.script)-1 {
		d.dismissed = true
		return true
	}
	d.index++
	return false
}

// Dismiss closes the dialogue from any position without advancing.
func (d *Dialogue) Dismiss() {
	d.dismissed = true
}

// Index returns the current 0-based line position.
func (d *Dialogue) Index() int {
	return d.index
}

// Line returns the currently displayed line.
func (d *Dialogue) Line() string {
	return d.script.Line(d.index)
}

// OnLastLine reports whether the dialogue sits on its final line. The
// advance indicator arrow hides here.
func (d *Dialogue) OnLastLine() bool {
	return d.index == len(d.script)-1
}

// Dismissed reports whether the dialogue has been closed.
func (d *Dialogue) Dismissed() bool {
	return d.dismissed
}
