package sim_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/phase"
	"github.com/skm-dev/gravstream/internal/sim"
	"github.com/skm-dev/gravstream/internal/solver"
)

var _ = Describe("AutoStep", func() {
	var system *sim.System

	newRing := func() *sim.System {
		def, err := body.StableRing(3, 1.0)
		Expect(err).NotTo(HaveOccurred())
		def.Dt = 0.001
		s, err := sim.New(def, sim.WithSolver(solver.KindLeapfrog))
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	BeforeEach(func() {
		system = newRing()
	})

	It("rejects a non-positive capacity", func() {
		_, err := system.AutoStep(context.Background(), 0)
		Expect(err).To(HaveOccurred())

		_, err = system.AutoStep(context.Background(), -1)
		Expect(err).To(HaveOccurred())
	})

	It("delivers snapshots in order with strictly increasing timestamps", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		snaps, err := system.AutoStep(ctx, 16)
		Expect(err).NotTo(HaveOccurred())

		last := 0.0
		for i := 0; i < 50; i++ {
			var snap sim.Snapshot
			Eventually(snaps, time.Second).Should(Receive(&snap))
			Expect(snap.Timestamp).To(BeNumerically(">", last))
			Expect(snap.Bodies).To(HaveLen(3))
			last = snap.Timestamp
		}
	})

	It("never runs more than the buffer capacity ahead of the consumer", func() {
		const capacity = 8

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		snaps, err := system.AutoStep(ctx, capacity)
		Expect(err).NotTo(HaveOccurred())

		consumed := 0
		for i := 0; i < 5; i++ {
			Eventually(snaps, time.Second).Should(Receive())
			consumed++
		}

		// Give the producer time to fill the buffer and block.
		time.Sleep(50 * time.Millisecond)
		cancel()

		drained := 0
		Eventually(func() bool {
			for {
				select {
				case _, ok := <-snaps:
					if !ok {
						return true
					}
					drained++
				default:
					return false
				}
			}
		}, time.Second).Should(BeTrue())

		// Buffered snapshots plus at most one in flight across the cancel.
		Expect(drained).To(BeNumerically("<=", capacity+2))
	})

	It("stops gracefully and idempotently on cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())

		snaps, err := system.AutoStep(ctx, 4)
		Expect(err).NotTo(HaveOccurred())

		var received []sim.Snapshot
		for i := 0; i < 3; i++ {
			var snap sim.Snapshot
			Eventually(snaps, time.Second).Should(Receive(&snap))
			received = append(received, snap)
		}

		cancel()
		Eventually(snaps, time.Second).Should(BeClosed())

		// Cancelling after completion is a no-op and the delivered
		// sequence is untouched.
		cancel()
		for i := 1; i < len(received); i++ {
			Expect(received[i].Timestamp).To(BeNumerically(">", received[i-1].Timestamp))
		}
		Expect(system.Err()).NotTo(HaveOccurred())
	})

	It("completes the stream when the solver fails fatally", func() {
		def := body.BinaryPair()
		def.Dt = 0.01
		unstable, err := sim.New(def,
			sim.WithSolver(solver.KindDormandPrince),
			sim.WithAdaptive(solver.AdaptiveConfig{Tolerance: 1e-14, MinDt: 0.009, MaxDt: 0.1}),
		)
		Expect(err).NotTo(HaveOccurred())

		snaps, err := unstable.AutoStep(context.Background(), 4)
		Expect(err).NotTo(HaveOccurred())

		Eventually(snaps, time.Second).Should(BeClosed())
		Expect(unstable.Err()).To(MatchError(phase.ErrStepUnderflow))
	})
})
