package render

import (
	"math"

	"github.com/Gxrco/planetarium/pkg/math3d"
)

// WarpPhase identifies a stage of the camera warp transition.
type WarpPhase int

const (
	// WarpNone means no warp is in flight.
	WarpNone WarpPhase = iota
	// WarpPortalOpening grows the portal overlay to full size.
	WarpPortalOpening
	// WarpOverview flies the camera to a vantage above the target.
	WarpOverview
	// WarpApproaching descends from the vantage to the final pose.
	WarpApproaching
	// WarpPortalClosing shrinks the portal overlay back to nothing.
	WarpPortalClosing
)

// Per-tick progress increments for each phase.
const (
	portalOpenStep  = 0.05
	overviewStep    = 0.02
	approachStep    = 0.015
	portalCloseStep = 0.05
)

// Offsets from the warp target for the intermediate and final eye.
var (
	overviewOffset = math3d.V3(0, 25, 0)
	approachOffset = math3d.V3(8, 12, 8)
)

// StartWarp begins a warp toward target. It is ignored while another
// warp is in flight.
func (c *Camera) StartWarp(target math3d.Vec3) {
	if c.warpPhase != WarpNone {
		return
	}
	c.warpPhase = WarpPortalOpening
	c.warpProgress = 0
	c.portalRadius = 0
	c.warpStartEye = c.Eye
	c.warpStartCtr = c.Center
	c.warpTarget = target
	c.overviewEye = target.Add(overviewOffset)
	c.finalEye = target.Add(approachOffset)
	c.hasChanged = true
}

// BirdEyeView warps to a fixed high vantage over the origin. Both the
// overview and final eye are the vantage itself, so the approach phase
// holds the pose while the portal timing plays out.
func (c *Camera) BirdEyeView() {
	if c.warpPhase != WarpNone {
		return
	}
	vantage := math3d.V3(-40, 80, 40)
	c.warpPhase = WarpPortalOpening
	c.warpProgress = 0
	c.portalRadius = 0
	c.warpStartEye = c.Eye
	c.warpStartCtr = c.Center
	c.warpTarget = math3d.Zero3()
	c.overviewEye = vantage
	c.finalEye = vantage
	c.hasChanged = true
}

// Warping reports whether a warp transition is in flight.
func (c *Camera) Warping() bool {
	return c.warpPhase != WarpNone
}

// WarpState returns the current warp phase.
func (c *Camera) WarpState() WarpPhase {
	return c.warpPhase
}

// UpdateWarp advances the warp state machine by one tick and returns
// the portal overlay radius in [0, 1]. ok is false when no warp is in
// flight. Call once per frame.
func (c *Camera) UpdateWarp() (radius float64, ok bool) {
	switch c.warpPhase {
	case WarpNone:
		return 0, false

	case WarpPortalOpening:
		c.warpProgress += portalOpenStep
		c.portalRadius = math.Min(c.warpProgress, 1)
		if c.warpProgress >= 1 {
			c.warpPhase = WarpOverview
			c.warpProgress = 0
		}

	case WarpOverview:
		c.warpProgress += overviewStep
		t := easeCosine(math.Min(c.warpProgress, 1))
		c.Eye = c.warpStartEye.Lerp(c.overviewEye, t)
		c.Center = c.warpStartCtr.Lerp(c.warpTarget, t)
		c.markMoved()
		if c.warpProgress >= 1 {
			c.warpPhase = WarpApproaching
			c.warpProgress = 0
			c.warpStartEye = c.Eye
		}

	case WarpApproaching:
		c.warpProgress += approachStep
		t := easeCosine(math.Min(c.warpProgress, 1))
		c.Eye = c.warpStartEye.Lerp(c.finalEye, t)
		c.markMoved()
		if c.warpProgress >= 1 {
			c.warpPhase = WarpPortalClosing
			c.warpProgress = 0
		}

	case WarpPortalClosing:
		c.warpProgress += portalCloseStep
		c.portalRadius = math.Max(1-c.warpProgress, 0)
		if c.warpProgress >= 1 {
			c.warpPhase = WarpNone
			c.warpProgress = 0
			c.portalRadius = 0
			return 0, false
		}
	}

	return c.portalRadius, true
}

// easeCosine maps t in [0, 1] onto a cosine ease-in-out curve.
func easeCosine(t float64) float64 {
	return (1 - math.Cos(t*math.Pi)) / 2
}
