package sim

import (
	"context"
	"fmt"
)

// DefaultStreamCapacity is the snapshot buffer size used by consumers that
// have no better number.
const DefaultStreamCapacity = 512

// AutoStep runs the step loop on its own goroutine and delivers a snapshot
// after every accepted step through a channel of the given capacity. A full
// channel blocks the producer, so the simulation never runs more than
// capacity steps ahead of the consumer.
//
// The stream is infinite until ctx is cancelled or the solver fails; either
// way the channel is closed and no error surfaces here. Cancellation is
// checked once per iteration, before taking the next step, so an in-flight
// step always finishes and a cancel racing a blocked publish unblocks it.
func (s *System) AutoStep(ctx context.Context, capacity int) (<-chan Snapshot, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("sim: stream capacity must be positive, got %d", capacity)
	}

	out := make(chan Snapshot, capacity)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := s.Step(); err != nil {
				return
			}

			select {
			case out <- s.Snapshot():
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
