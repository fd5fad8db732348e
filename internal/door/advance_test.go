package door_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/akl-leul/momentumsimu/internal/door"
)

var _ = Describe("Initialize", func() {
	p := door.DefaultParams()

	It("fixes door A angular momentum from initial inertia and velocity", func() {
		s := door.Initialize(p)
		Expect(s.DoorA.AngularMomentum).To(Equal(s.DoorA.MomentOfInertia * p.InitialAngularVelocity))
	})

	It("reproduces the reference values for the default parameters", func() {
		s := door.Initialize(p)
		Expect(s.DoorA.MomentOfInertia).To(BeNumerically("~", 10.08, 1e-12))
		Expect(s.DoorA.AngularMomentum).To(BeNumerically("~", 20.16, 1e-12))
		Expect(s.DoorB.MomentOfInertia).To(BeNumerically("~", 10.0, 1e-12))
		Expect(s.DoorB.AngularMomentum).To(BeNumerically("~", 20.0, 1e-12))
	})

	It("starts idle at time zero with both doors open", func() {
		s := door.Initialize(p)
		Expect(s.Time).To(BeZero())
		Expect(s.Running).To(BeFalse())
		Expect(s.Phase).To(Equal(door.PhaseIdle))
		Expect(s.DoorA.Angle).To(BeZero())
		Expect(s.DoorB.Angle).To(BeZero())
		Expect(s.DoorA.MassRadius).To(Equal(p.InitialRadius))
	})
})

var _ = Describe("Advance", func() {
	var p door.Params
	var s door.State

	start := func(st door.State) door.State {
		st.Running = true
		st.Phase = door.Phase1
		return st
	}

	BeforeEach(func() {
		p = door.DefaultParams()
		s = start(door.Initialize(p))
	})

	It("returns a paused state unchanged", func() {
		paused := door.Initialize(p)
		paused.Time = 3.7
		paused.DoorA.Angle = 0.4
		Expect(door.Advance(paused, p, 0.1)).To(Equal(paused))
	})

	It("never recomputes angular momentum after initialization", func() {
		l0A := s.DoorA.AngularMomentum
		l0B := s.DoorB.AngularMomentum
		for i := 0; i < 200; i++ {
			s = door.Advance(s, p, 0.016)
			Expect(s.DoorA.AngularMomentum).To(Equal(l0A))
			Expect(s.DoorB.AngularMomentum).To(Equal(l0B))
		}
	})

	It("keeps angles and mass radius monotonic and within bounds", func() {
		prev := s
		for i := 0; i < 400; i++ {
			s = door.Advance(s, p, 0.016)
			Expect(s.DoorA.Angle).To(BeNumerically(">=", prev.DoorA.Angle))
			Expect(s.DoorB.Angle).To(BeNumerically(">=", prev.DoorB.Angle))
			Expect(s.DoorA.MassRadius).To(BeNumerically(">=", prev.DoorA.MassRadius))
			Expect(s.DoorA.Angle).To(BeNumerically("<=", door.MaxDoorAngle))
			Expect(s.DoorB.Angle).To(BeNumerically("<=", door.MaxDoorAngle))
			Expect(s.DoorA.MassRadius).To(BeNumerically(">=", p.InitialRadius))
			Expect(s.DoorA.MassRadius).To(BeNumerically("<=", p.FinalRadius))
			prev = s
		}
	})

	It("slows door A as the mass slides out while door B holds its rate", func() {
		for i := 0; i < 40; i++ {
			s = door.Advance(s, p, 0.016)
			if s.DoorB.Angle < door.MaxDoorAngle {
				Expect(s.DoorB.AngularVelocity).To(Equal(p.InitialAngularVelocity))
			}
		}
		Expect(s.DoorA.AngularVelocity).To(BeNumerically("<", p.InitialAngularVelocity))
		Expect(s.DoorA.MomentOfInertia).To(BeNumerically(">", 10.08))
	})

	It("completes the slide at SlideDuration regardless of door angle", func() {
		// Shorten the slide so it finishes while both doors are
		// still swinging.
		p.SlideDuration = 0.5
		s = start(door.Initialize(p))
		for s.Running && s.Time < p.SlideDuration {
			s = door.Advance(s, p, 0.1)
		}
		Expect(s.DoorA.MassRadius).To(BeNumerically("~", p.FinalRadius, 1e-12))
	})

	It("converges to a finished state under repeated fixed steps", func() {
		for i := 0; i < 1000 && s.Running; i++ {
			s = door.Advance(s, p, 0.1)
		}
		Expect(s.Running).To(BeFalse())
		Expect(s.Phase).To(Equal(door.Phase2))
		Expect(s.DoorA.AngularVelocity).To(BeZero())
		Expect(s.DoorB.AngularVelocity).To(BeZero())
		Expect(s.DoorA.Angle).To(BeNumerically("~", math.Pi/2, 1e-9))
		Expect(s.DoorB.Angle).To(BeNumerically("~", math.Pi/2, 1e-9))
	})

	It("stops one tick after both doors first reach the limit", func() {
		for i := 0; i < 1000; i++ {
			next := door.Advance(s, p, 0.1)
			if next.Phase == door.Phase2 && s.Phase != door.Phase2 {
				// First tick at phase2 still reports running.
				Expect(next.Running).To(BeTrue())
				final := door.Advance(next, p, 0.1)
				Expect(final.Running).To(BeFalse())
				Expect(final.Time).To(Equal(next.Time))
				Expect(final.DoorA.Angle).To(Equal(next.DoorA.Angle))
				return
			}
			s = next
		}
		Fail("doors never reached the closing limit")
	})

	It("forces velocity to zero once a door is pinned at the limit", func() {
		s.DoorB.Angle = door.MaxDoorAngle
		next := door.Advance(s, p, 0.016)
		Expect(next.DoorB.AngularVelocity).To(BeZero())
		Expect(next.DoorB.Angle).To(Equal(door.MaxDoorAngle))
		// Door A keeps moving on its own momentum.
		Expect(next.DoorA.Angle).To(BeNumerically(">", s.DoorA.Angle))
	})

	It("propagates degenerate inertia as non-finite velocity without panicking", func() {
		zero := door.Params{SlideDuration: 1}
		zs := start(door.Initialize(zero))
		zs = door.Advance(zs, zero, 0.016)
		Expect(math.IsNaN(zs.DoorA.AngularVelocity)).To(BeTrue())
	})
})
