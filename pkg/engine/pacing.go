package engine

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/drag3d/pkg/render"
)

// frameDelay is the sleep after a frame that took elapsed: the rest of the
// interval, or nothing if the frame overran.
func frameDelay(elapsed, interval time.Duration) time.Duration {
	return max(interval-elapsed, 0)
}

// pacer computes the sleep after each frame.
//
// Without catch-up every frame sleeps the remainder of its own interval, so
// overruns accumulate as drift. With catch-up frames are scheduled against
// absolute deadlines and late frames run back to back until the schedule is
// met; a frame more than one interval late resets the schedule.
type pacer struct {
	interval time.Duration
	catchUp  bool
	deadline time.Time
}

func (p *pacer) delay(start, now time.Time) time.Duration {
	if !p.catchUp {
		return frameDelay(now.Sub(start), p.interval)
	}

	if p.deadline.IsZero() {
		p.deadline = start
	}
	p.deadline = p.deadline.Add(p.interval)

	d := p.deadline.Sub(now)
	if d < -p.interval {
		p.deadline = now
		return 0
	}
	return max(d, 0)
}

// Spring parameters for smoothed mouse look.
const (
	lookFrequency = 6.0
	lookDamping   = 1.0
)

// lookSpring eases the camera's yaw and pitch toward a target set by mouse
// drags.
type lookSpring struct {
	spring harmonica.Spring

	targetYaw, targetPitch float64
	yawVel, pitchVel       float64
}

func newLookSpring(fps int, c *render.Camera) *lookSpring {
	return &lookSpring{
		spring:      harmonica.NewSpring(harmonica.FPS(fps), lookFrequency, lookDamping),
		targetYaw:   c.Yaw,
		targetPitch: c.Pitch,
	}
}

func (l *lookSpring) turn(dYaw, dPitch float64) {
	l.targetYaw += dYaw
	l.targetPitch += dPitch
}

func (l *lookSpring) step(c *render.Camera) {
	c.Yaw, l.yawVel = l.spring.Update(c.Yaw, l.yawVel, l.targetYaw)
	c.Pitch, l.pitchVel = l.spring.Update(c.Pitch, l.pitchVel, l.targetPitch)
}
