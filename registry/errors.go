package registry

import (
	"errors"
)

var (
	// ErrChainUnavailable wraps RPC transport failures. The current update
	// cycle aborts and the next scheduled cycle retries.
	ErrChainUnavailable = errors.New("execution layer unavailable")
	// ErrUnknownBlock is returned when the node has no block for the given
	// reference.
	ErrUnknownBlock = errors.New("unknown block")
	// ErrValidatorsOutdated is raised by the stall watchdog when no update
	// cycle succeeds within the configured deadline. It is fatal: the
	// process exits and the supervisor restarts it.
	ErrValidatorsOutdated = errors.New("validators outdated")
)
