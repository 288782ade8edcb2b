// Package mmu implements the GPU MMU controller: the lifecycle state
// machine that owns the hardware translation units, binds them to address
// spaces, and routes buffer mappings to a hardware backend.
//
// All controller operations must run while the caller holds the device's
// global serialization lock. The controller has no internal locking and
// no background activity; SetState's idle wait is the only point where an
// operation blocks.
package mmu

import (
	"fmt"
	"time"

	"github.com/sarchlab/gmmu/hooking"
	"github.com/sarchlab/gmmu/vm"
)

// A Controller manages address-space isolation for one GPU. It discovers
// the hardware translation units at Init, binds them to the default
// address space at Start, switches bindings on SetState, and tears them
// down on Stop/Close.
type Controller struct {
	*hooking.HookableBase

	name     string
	backend  Backend
	resolver Resolver
	device   Device

	maxUnits           int
	maxContextsPerUnit int
	idleTimeout        time.Duration

	units       []*Unit
	initialized bool
	started     bool

	defaultSpace *vm.AddressSpace
	activeSpace  *vm.AddressSpace
}

// Name returns the controller's name.
func (c *Controller) Name() string {
	return c.name
}

// Units returns the discovered translation units in discovery order. The
// slice is empty before Init succeeds.
func (c *Controller) Units() []*Unit {
	return c.units
}

// Started reports whether the controller is in the started state.
func (c *Controller) Started() bool {
	return c.started
}

// ActiveAddressSpace returns the address space the translation hardware
// is currently bound to, or nil when none is.
func (c *Controller) ActiveAddressSpace() *vm.AddressSpace {
	return c.activeSpace
}

// Init discovers the translation units and contexts listed in the
// platform descriptor table. On failure the partial discovery result is
// dropped and the controller stays uninitialized.
func (c *Controller) Init(table DescriptorTable) error {
	units, err := c.discover(table)
	if err != nil {
		return err
	}

	c.units = units
	c.initialized = true

	return nil
}

// Start brings the translation hardware up: it resets the MMU
// configuration register, lazily creates the default address space, and
// attaches every context to it. Start on a started controller is a
// no-op. On attach failure everything attached so far is detached again
// and the controller stays stopped.
func (c *Controller) Start() error {
	if c.started {
		return nil
	}

	if !c.initialized {
		panic("controller " + c.name + " started before Init")
	}

	c.device.RegWrite(RegMMUConfig, 0)

	if c.defaultSpace == nil {
		as, err := c.backend.CreateAddressSpace()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAllocationFailed, err)
		}
		c.defaultSpace = as
	}
	c.activeSpace = c.defaultSpace

	if err := c.attachAll(); err != nil {
		c.detachAll()
		c.activeSpace = nil
		return err
	}

	c.started = true
	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosStart,
		Item:   c.activeSpace,
	})

	return nil
}

// Stop detaches every context and clears the active address space. Stop
// on a stopped controller is a no-op. Stop always succeeds; it is called
// from error recovery paths where there is nothing left to do about a
// failure.
func (c *Controller) Stop() error {
	if !c.started {
		return nil
	}

	c.detachAll()
	c.activeSpace = nil
	c.started = false

	c.InvokeHook(hooking.HookCtx{Domain: c, Pos: HookPosStop})

	return nil
}

// Close releases the controller's reference on the default address
// space, destroying it if this was the last reference. Close is
// idempotent.
func (c *Controller) Close() {
	if c.defaultSpace == nil {
		return
	}

	if c.defaultSpace.Release() {
		c.backend.DestroyAddressSpace(c.defaultSpace)
	}
	c.defaultSpace = nil
}

// SetState switches the translation hardware to a new address space. It
// is a no-op when the controller is not started or when as is the
// currently active space (identity comparison). The switch waits for the
// device to go idle, detaches every context from the old space, and, if
// as is non-nil, attaches them to the new one. A nil as leaves the
// controller started with nothing attached, a valid but inert state.
//
// Attach failures during a switch are reported through hooks only; the
// next switch or stop retries the detach side regardless.
func (c *Controller) SetState(as *vm.AddressSpace) {
	if !c.started {
		return
	}

	if as == c.activeSpace {
		return
	}

	c.device.Idle(c.idleTimeout)
	c.detachAll()
	c.activeSpace = as
	if as != nil {
		_ = c.attachAll()
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosStateChange,
		Item:   as,
	})
}

// CurrentAddressSpaceToken returns the identity token of the active
// address space, for register-level cross-checks by external callers.
// It must only be called while the controller is started.
func (c *Controller) CurrentAddressSpaceToken() vm.Token {
	return c.activeSpace.Token()
}
