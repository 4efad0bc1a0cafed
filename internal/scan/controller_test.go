package scan

import "testing"

func TestStartScan(t *testing.T) {
	c := NewController()

	if c.State() != StateIdle {
		t.Fatalf("new controller state = %v, want StateIdle", c.State())
	}
	if !c.TriggerEnabled() {
		t.Error("expected trigger enabled while Idle")
	}
	if c.TriggerLabel() != LabelIdle {
		t.Errorf("idle label = %q, want %q", c.TriggerLabel(), LabelIdle)
	}

	if !c.StartScan() {
		t.Fatal("expected StartScan to succeed from Idle")
	}
	if c.State() != StateScanning {
		t.Errorf("state after StartScan = %v, want StateScanning", c.State())
	}
	if c.TriggerEnabled() {
		t.Error("expected trigger disabled while Scanning")
	}
	if c.TriggerLabel() != LabelScanning {
		t.Errorf("scanning label = %q, want %q", c.TriggerLabel(), LabelScanning)
	}
}

func TestStartScanWhileScanning(t *testing.T) {
	c := NewController()
	c.StartScan()

	if c.StartScan() {
		t.Error("expected second StartScan to be refused")
	}
	if c.State() != StateScanning {
		t.Errorf("state = %v, want StateScanning unchanged", c.State())
	}
}

func TestDetectionCompleted(t *testing.T) {
	c := NewController()
	c.StartScan()

	if !c.DetectionCompleted(2, 3) {
		t.Fatal("expected DetectionCompleted to succeed while Scanning")
	}
	if c.State() != StateIdle {
		t.Errorf("state after completion = %v, want StateIdle", c.State())
	}
	res := c.LastResult()
	if res == nil {
		t.Fatal("expected last result recorded")
	}
	if res.AnchorsCreated != 2 || res.ObjectsDetected != 3 {
		t.Errorf("last result = %+v, want anchors 2 objects 3", res)
	}
}

func TestDetectionCompletedZeroObjectsRearms(t *testing.T) {
	c := NewController()
	c.StartScan()
	c.DetectionCompleted(0, 0)

	if !c.TriggerEnabled() {
		t.Error("expected trigger re-armed after empty pass")
	}
	if res := c.LastResult(); res == nil || res.ObjectsDetected != 0 {
		t.Errorf("last result = %+v, want recorded zero-object pass", res)
	}
}

func TestDetectionCompletedWhileIdle(t *testing.T) {
	c := NewController()

	if c.DetectionCompleted(1, 1) {
		t.Error("expected completion while Idle to be refused")
	}
	if c.LastResult() != nil {
		t.Error("expected no result recorded from refused completion")
	}

	// A late duplicate after a real pass must not clobber the result.
	c.StartScan()
	c.DetectionCompleted(1, 4)
	if c.DetectionCompleted(9, 9) {
		t.Error("expected duplicate completion to be refused")
	}
	if res := c.LastResult(); res.ObjectsDetected != 4 {
		t.Errorf("last result objects = %d, want 4", res.ObjectsDetected)
	}
}

func TestScanCycleRepeats(t *testing.T) {
	c := NewController()
	for i := 0; i < 3; i++ {
		if !c.StartScan() {
			t.Fatalf("cycle %d: StartScan refused", i)
		}
		if !c.DetectionCompleted(i, i+1) {
			t.Fatalf("cycle %d: DetectionCompleted refused", i)
		}
	}
	if res := c.LastResult(); res.ObjectsDetected != 3 {
		t.Errorf("last result objects = %d, want 3", res.ObjectsDetected)
	}
}
