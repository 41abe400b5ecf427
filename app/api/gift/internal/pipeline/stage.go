package pipeline

import "sync"

// Stage is the visible progress state of a recommendation run. IDLE and the
// two terminal stages hide the progress overlay; the three in-flight stages
// drive it.
type Stage string

const (
	StageIdle       Stage = "IDLE"
	StageAnalyzing  Stage = "ANALYZING"
	StageGenerating Stage = "GENERATING"
	StageSearching  Stage = "SEARCHING"
	StageCompleted  Stage = "COMPLETED"
	StageError      Stage = "ERROR"
)

func (s Stage) InFlight() bool {
	return s == StageAnalyzing || s == StageGenerating || s == StageSearching
}

func (s Stage) Terminal() bool {
	return s == StageCompleted || s == StageError
}

// transitions is the exhaustive set of legal moves. ERROR is reachable from
// any in-flight stage; a new submission restarts from any resting stage.
var transitions = map[Stage][]Stage{
	StageIdle:       {StageAnalyzing},
	StageAnalyzing:  {StageGenerating, StageError, StageAnalyzing},
	StageGenerating: {StageSearching, StageError, StageAnalyzing},
	StageSearching:  {StageCompleted, StageError, StageAnalyzing},
	StageCompleted:  {StageAnalyzing, StageIdle},
	StageError:      {StageAnalyzing, StageIdle},
}

// CanEnter reports whether moving from one stage to another is legal.
func CanEnter(from, to Stage) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// stageHolder is the single observable stage cell shared between an in-flight
// run and the progress endpoint.
type stageHolder struct {
	mu    sync.RWMutex
	stage Stage
}

func newStageHolder() *stageHolder {
	return &stageHolder{stage: StageIdle}
}

func (h *stageHolder) get() Stage {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.stage
}

func (h *stageHolder) set(next Stage) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !CanEnter(h.stage, next) {
		return false
	}
	h.stage = next
	return true
}
