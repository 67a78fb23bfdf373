package service_test

import "sync/atomic"

// countingRecorder counts coordinator events.
type countingRecorder struct {
	dissolved  atomic.Int64
	strategies atomic.Int64
}

func (r *countingRecorder) GroupDissolved()  { r.dissolved.Add(1) }
func (r *countingRecorder) StrategyCreated() { r.strategies.Add(1) }
