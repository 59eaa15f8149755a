package xrinput

import (
	"time"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is a rigid transform (translation + rotation) in some reference
// space. Absence of a pose this frame is modeled as a nil *Pose.
type Pose struct {
	Position    r3.Vec      `json:"position"`
	Orientation r3.Rotation `json:"orientation"`
}

// NewPose builds a pose from a position and a unit quaternion given as
// (w, x, y, z).
func NewPose(pos r3.Vec, w, x, y, z float64) Pose {
	return Pose{
		Position:    pos,
		Orientation: r3.Rotation(quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}),
	}
}

// IdentityPose returns a pose at the origin with no rotation.
func IdentityPose() Pose {
	return NewPose(r3.Vec{}, 1, 0, 0, 0)
}

// resolvePose turns a raw space query into an optional pose. Both validity
// flags must be set; anything else is "untracked this frame", which is a
// normal outcome, not an error. A transport fault from the backend is
// wrapped and propagated.
func resolvePose(b Backend, anchor, base Space, predicted time.Duration) (*Pose, error) {
	loc, err := b.LocateSpace(anchor, base, predicted)
	if err != nil {
		return nil, &QueryError{Op: "locate_space", Err: err}
	}
	if !loc.PositionValid || !loc.OrientationValid {
		return nil, nil
	}
	pose := loc.Pose
	return &pose, nil
}
