package mmu

import (
	"errors"
	"fmt"
)

// Errors reported by controller lifecycle operations. Discovery and
// attach failures are fatal to the calling operation and propagate to the
// caller. Detach and unmap failures are reported through hooks only;
// teardown never fails outright.
var (
	// ErrAllocationFailed indicates the backend could not allocate a
	// hardware translation domain.
	ErrAllocationFailed = errors.New("address space allocation failed")

	// ErrTooManyUnits indicates the descriptor table defines more
	// translation units than the controller supports.
	ErrTooManyUnits = errors.New("too many translation units defined")

	// ErrTooManyContextsPerUnit indicates a unit descriptor defines more
	// contexts than fit in one unit.
	ErrTooManyContextsPerUnit = errors.New(
		"too many translation contexts defined for a unit")

	// ErrContextNotFound indicates a named context could not be resolved
	// to a device handle.
	ErrContextNotFound = errors.New("translation context not found")

	// ErrInvalidContextKind indicates a context descriptor carries a kind
	// tag that is neither user nor privileged.
	ErrInvalidContextKind = errors.New("invalid translation context kind")
)

// An AttachError reports the context that failed to attach and the
// underlying hardware error. Contexts attached before the failure remain
// attached; detach is idempotent and retried on the next stop or
// address-space switch.
type AttachError struct {
	Context string
	Err     error
}

func (e *AttachError) Error() string {
	return fmt.Sprintf("failed to attach context %s: %v", e.Context, e.Err)
}

func (e *AttachError) Unwrap() error {
	return e.Err
}

// A MapError reports a failed mapping and the underlying hardware error.
// Mappings are not retried.
type MapError struct {
	GPUAddr uint64
	Size    uint64
	Err     error
}

func (e *MapError) Error() string {
	return fmt.Sprintf("failed to map [0x%x, 0x%x): %v",
		e.GPUAddr, e.GPUAddr+e.Size, e.Err)
}

func (e *MapError) Unwrap() error {
	return e.Err
}
