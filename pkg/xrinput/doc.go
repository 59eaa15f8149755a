// Package xrinput turns raw per-frame tracking signals from an XR backend
// into a debounced, application-facing input event stream.
//
// Each hand or controller is modeled as a Source. Once per tracking frame the
// driver calls Source.Frame with the viewer (head) pose and the predicted
// display time; the source resolves its aim and grip poses, evaluates the
// palm "menu" gesture, runs the per-button click state machines and returns a
// single FrameRecord for the downstream consumer.
//
// The backend is a black box behind the Backend interface: it answers pose
// and button queries, nothing more. Action and space creation, interaction
// profile bindings and session lifecycle are setup concerns that live with
// the backend implementation, not here.
//
// Lost tracking is normal, not an error: an invalid pose this frame comes
// back as a nil *Pose and every consumer in this package tolerates it. Only
// a transport-level failure (the backend could not answer at all) is
// surfaced, as a *QueryError, and then no FrameRecord is produced for that
// frame rather than fabricating one from zeroed state.
package xrinput
