package describe

import "testing"

func TestBufferStartShowsSentinel(t *testing.T) {
	b := NewBuffer()

	if b.Visible() {
		t.Error("new buffer should be hidden")
	}
	if b.Text() != "" {
		t.Errorf("hidden text = %q, want empty", b.Text())
	}

	gen := b.Start()
	if gen != 1 {
		t.Errorf("first generation = %d, want 1", gen)
	}
	if !b.Visible() {
		t.Error("buffer should be visible after Start")
	}
	if b.Phase() != Accumulating {
		t.Errorf("phase = %v, want Accumulating", b.Phase())
	}
	if b.Text() != Sentinel {
		t.Errorf("text = %q, want sentinel only", b.Text())
	}
}

func TestBufferAppendsInOrder(t *testing.T) {
	b := NewBuffer()
	gen := b.Start()

	for _, tok := range []string{" A wooden", " desk", " with a mug."} {
		if !b.Append(tok, gen) {
			t.Fatalf("Append(%q) refused", tok)
		}
	}

	want := Sentinel + " A wooden desk with a mug."
	if b.Text() != want {
		t.Errorf("text = %q, want %q", b.Text(), want)
	}
}

func TestBufferDropsStaleGeneration(t *testing.T) {
	b := NewBuffer()
	oldGen := b.Start()
	b.Append(" old", oldGen)

	newGen := b.Start()
	if newGen == oldGen {
		t.Fatal("Start should mint a new generation")
	}
	if b.Text() != Sentinel {
		t.Errorf("restart should reset text, got %q", b.Text())
	}

	// Tokens from the superseded stream arrive late.
	if b.Append(" stale", oldGen) {
		t.Error("expected stale token to be dropped")
	}
	if !b.Append(" fresh", newGen) {
		t.Error("expected live token to be accepted")
	}
	if b.Text() != Sentinel+" fresh" {
		t.Errorf("text = %q, want sentinel + fresh token only", b.Text())
	}
}

func TestBufferCompleteKeepsText(t *testing.T) {
	b := NewBuffer()
	gen := b.Start()
	b.Append(" done", gen)
	b.Complete()

	if b.Phase() != Completed {
		t.Errorf("phase = %v, want Completed", b.Phase())
	}
	if !b.Visible() {
		t.Error("completed text should stay visible")
	}
	if b.Append(" late", gen) {
		t.Error("expected append after Complete to be refused")
	}
	if b.Text() != Sentinel+" done" {
		t.Errorf("text = %q, want unchanged", b.Text())
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer()
	gen := b.Start()
	b.Append(" text", gen)

	b.Clear()
	if b.Visible() {
		t.Error("buffer should be hidden after Clear")
	}
	if b.Text() != "" {
		t.Errorf("cleared text = %q, want empty", b.Text())
	}

	// Clear bumps the generation, so the cleared stream's tokens can
	// never land.
	if b.Append(" ghost", gen) {
		t.Error("expected token from cleared stream to be dropped")
	}

	// A new stream starts clean.
	gen2 := b.Start()
	if gen2 <= gen {
		t.Errorf("generation after Clear+Start = %d, want > %d", gen2, gen)
	}
	if b.Text() != Sentinel {
		t.Errorf("text = %q, want sentinel only", b.Text())
	}
}

func TestBufferCompleteWhileHiddenIsNoop(t *testing.T) {
	b := NewBuffer()
	b.Complete()
	if b.Phase() != Hidden {
		t.Errorf("phase = %v, want Hidden", b.Phase())
	}
}
