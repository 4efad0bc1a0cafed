package scan

// State is the scanning phase of the controller.
type State int

const (
	// StateIdle means no detection pass is in flight; the trigger is armed.
	StateIdle State = iota
	// StateScanning means a detection pass is in flight; the trigger is held.
	StateScanning
)

// Trigger labels shown on the scan button.
const (
	LabelIdle     = "Scan"
	LabelScanning = "Scanning..."
)

// Result summarizes a completed detection pass.
type Result struct {
	AnchorsCreated  int
	ObjectsDetected int
}

// Controller owns the scanning-active flag and the scan trigger. It does
// no I/O: the hosting screen calls StartScan on a trigger tap and
// DetectionCompleted when the detection pass hands back its result. At
// most one pass is in flight; calls that arrive in the wrong state are
// no-ops so late or duplicate callbacks cannot corrupt it.
type Controller struct {
	state      State
	lastResult *Result
}

// NewController returns a controller in Idle with the trigger armed.
func NewController() *Controller {
	return &Controller{state: StateIdle}
}

// StartScan moves Idle → Scanning and reports whether a new pass may
// begin. A second call while Scanning returns false and changes nothing.
func (c *Controller) StartScan() bool {
	if c.state == StateScanning {
		return false
	}
	c.state = StateScanning
	return true
}

// DetectionCompleted moves Scanning → Idle and records the pass result.
// Zero detected objects is a normal outcome and re-arms the trigger the
// same as a hit. Called while Idle it reports false and changes nothing.
func (c *Controller) DetectionCompleted(anchorsCreated, objectsDetected int) bool {
	if c.state != StateScanning {
		return false
	}
	c.state = StateIdle
	c.lastResult = &Result{
		AnchorsCreated:  anchorsCreated,
		ObjectsDetected: objectsDetected,
	}
	return true
}

// State returns the current phase.
func (c *Controller) State() State {
	return c.state
}

// TriggerEnabled reports whether the scan trigger accepts taps.
func (c *Controller) TriggerEnabled() bool {
	return c.state == StateIdle
}

// TriggerLabel returns the label the trigger should display.
func (c *Controller) TriggerLabel() string {
	if c.state == StateScanning {
		return LabelScanning
	}
	return LabelIdle
}

// LastResult returns the most recent completed pass, or nil before the
// first completion.
func (c *Controller) LastResult() *Result {
	return c.lastResult
}
