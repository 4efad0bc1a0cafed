package scanner

import (
	"github.com/google/uuid"

	"github.com/hyejin/orbquest/internal/vision"
)

// sessionReadyMsg is sent when the AR session has been created.
type sessionReadyMsg struct{}

// sessionFailedMsg is sent when AR session creation failed; err is the
// raw subsystem error, classified on receipt.
type sessionFailedMsg struct {
	err error
}

// detectionDoneMsg is sent when the asynchronous detection pass hands
// back its result.
type detectionDoneMsg struct {
	detection *vision.Detection
	err       error
}

// analysisTokenMsg carries one streamed description token. gen ties it
// to the stream that produced it; ch is the stream it keeps draining.
type analysisTokenMsg struct {
	gen  int
	text string
	ch   <-chan string
}

// analysisDoneMsg is sent when the description stream ends.
type analysisDoneMsg struct {
	gen int
}

// celebrationExpiredMsg is sent when a celebration's display window
// elapses. token identifies which celebration the timer belonged to.
type celebrationExpiredMsg struct {
	token uuid.UUID
}
