package suppression

import (
	"time"

	"github.com/nvr-ai/go-nms/boxes"
)

// Stats describes the observable outcome of one suppression call. Every
// entry point returns a fresh value, so concurrent callers sharing a
// Processor never see each other's counts.
type Stats struct {
	InputBoxes      int           `json:"inputBoxes"`
	OutputBoxes     int           `json:"outputBoxes"`
	SuppressedBoxes int           `json:"suppressedBoxes"`
	PerClass        map[int]int   `json:"perClass"` // output counts keyed by class ID
	Elapsed         time.Duration `json:"elapsed"`
}

// buildStats derives the stats for one call from its input size and final
// output.
func buildStats(inputCount int, output []boxes.BoundingBox, elapsed time.Duration) Stats {
	s := Stats{
		InputBoxes:      inputCount,
		OutputBoxes:     len(output),
		SuppressedBoxes: inputCount - len(output),
		PerClass:        map[int]int{},
		Elapsed:         elapsed,
	}
	for _, b := range output {
		s.PerClass[b.ClassID]++
	}
	return s
}

// add folds another call's stats into an accumulator.
func (s *Stats) add(o Stats) {
	s.InputBoxes += o.InputBoxes
	s.OutputBoxes += o.OutputBoxes
	s.SuppressedBoxes += o.SuppressedBoxes
	s.Elapsed += o.Elapsed
	if s.PerClass == nil {
		s.PerClass = map[int]int{}
	}
	for class, n := range o.PerClass {
		s.PerClass[class] += n
	}
}

// clone returns a copy that shares nothing with the receiver.
func (s Stats) clone() Stats {
	out := s
	out.PerClass = make(map[int]int, len(s.PerClass))
	for class, n := range s.PerClass {
		out.PerClass[class] = n
	}
	return out
}
