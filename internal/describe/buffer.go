package describe

import "strings"

// Phase is the visibility state of the description surface.
type Phase int

const (
	// Hidden means the surface is not shown and no stream is expected.
	Hidden Phase = iota
	// Accumulating means a stream is live and tokens are being appended.
	Accumulating
	// Completed means the stream finished; the text stays on screen.
	Completed
)

// Sentinel shown while the scene analysis streams in. Tokens append
// directly after it.
const Sentinel = "Analyzing scene..."

// Buffer accumulates streamed scene-description tokens into one
// displayable string. Each Start mints a new generation; a token carries
// the generation of the stream that produced it, and tokens whose
// generation no longer matches are dropped. That keeps a stale stream
// racing a restart from leaking text into the new one.
type Buffer struct {
	text       strings.Builder
	generation int
	phase      Phase
}

// NewBuffer returns a hidden, empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Start resets the buffer for a fresh stream, makes the surface visible
// with the sentinel, and returns the new stream generation.
func (b *Buffer) Start() int {
	b.text.Reset()
	b.generation++
	b.phase = Accumulating
	return b.generation
}

// Append adds one token to the buffer if gen matches the live stream.
// Mismatched tokens are dropped silently and Append reports false.
func (b *Buffer) Append(token string, gen int) bool {
	if b.phase != Accumulating || gen != b.generation {
		return false
	}
	b.text.WriteString(token)
	return true
}

// Complete marks the stream finished. The accumulated text remains
// visible; no further tokens are expected.
func (b *Buffer) Complete() {
	if b.phase == Accumulating {
		b.phase = Completed
	}
}

// Clear empties the buffer and hides the surface. The generation is
// bumped so tokens from the cleared stream can never match again.
func (b *Buffer) Clear() {
	b.text.Reset()
	b.generation++
	b.phase = Hidden
}

// Visible reports whether the description surface should be shown.
func (b *Buffer) Visible() bool {
	return b.phase != Hidden
}

// Text returns the displayable string: the sentinel followed by every
// accepted token in arrival order. Empty when hidden.
func (b *Buffer) Text() string {
	if b.phase == Hidden {
		return ""
	}
	return Sentinel + b.text.String()
}

// Generation returns the current stream generation.
func (b *Buffer) Generation() int {
	return b.generation
}

// Phase returns the current visibility phase.
func (b *Buffer) Phase() Phase {
	return b.phase
}
