package tutorial

import "testing"

func TestDialogueWalksScript(t *testing.T) {
	script := Script{"one", "two", "three"}
	d := NewDialogue(script)

	if d.Index() != 0 || d.Line() != "one" {
		t.Errorf("start at index %d line %q, want 0 %q", d.Index(), d.Line(), "one")
	}
	if d.OnLastLine() {
		t.Error("first line should not report last")
	}

	if d.Advance() {
		t.Error("advance from first line should not dismiss")
	}
	if d.Line() != "two" {
		t.Errorf("line = %q, want %q", d.Line(), "two")
	}

	d.Advance()
	if !d.OnLastLine() {
		t.Error("expected last line after two advances")
	}
	if d.Dismissed() {
		t.Error("sitting on last line should not dismiss")
	}
}

func TestAdvanceOnLastLineDismisses(t *testing.T) {
	d := NewDialogue(Script{"only"})

	if !d.OnLastLine() {
		t.Fatal("single-line script should start on last line")
	}
	if !d.Advance() {
		t.Error("advance on last line should dismiss")
	}
	if !d.Dismissed() {
		t.Error("expected dialogue dismissed")
	}

	// Index never runs past the end.
	if d.Index() != 0 {
		t.Errorf("index = %d, want clamped at 0", d.Index())
	}
	if d.Advance() {
		t.Error("advance after dismissal should be a no-op")
	}
}

func TestDismissFromAnyPosition(t *testing.T) {
	d := NewDialogue(Script{"one", "two", "three"})
	d.Advance()
	d.Dismiss()

	if !d.Dismissed() {
		t.Error("expected dialogue dismissed")
	}
	if d.Index() != 1 {
		t.Errorf("index = %d, want unchanged 1", d.Index())
	}
}

func TestDefaultScripts(t *testing.T) {
	if DefaultHomeScript.Len() != 5 {
		t.Errorf("home script lines = %d, want 5", DefaultHomeScript.Len())
	}
	if DefaultARScript.Len() != 5 {
		t.Errorf("AR script lines = %d, want 5", DefaultARScript.Len())
	}
	if DefaultHomeScript.Line(99) != "" {
		t.Error("out-of-range line should be empty")
	}
}
