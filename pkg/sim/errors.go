package sim

import "errors"

var (
	// ErrLinkDown simulates a transport-level backend fault: the runtime
	// cannot be reached at all, as opposed to answering "not tracked".
	ErrLinkDown = errors.New("sim: tracking link down")

	// ErrUnknownScenario is returned for a scenario name with no script.
	ErrUnknownScenario = errors.New("sim: unknown scenario")
)
