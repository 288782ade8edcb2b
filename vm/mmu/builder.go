package mmu

import (
	"time"

	"github.com/sarchlab/gmmu/hooking"
)

// A Builder can build MMU controllers.
type Builder struct {
	backend            Backend
	resolver           Resolver
	device             Device
	maxUnits           int
	maxContextsPerUnit int
	idleTimeout        time.Duration
}

// MakeBuilder creates a new builder with the default hardware limits.
func MakeBuilder() Builder {
	return Builder{
		maxUnits:           DefaultMaxUnits,
		maxContextsPerUnit: DefaultMaxContextsPerUnit,
		idleTimeout:        DefaultIdleTimeout,
	}
}

// WithBackend sets the hardware backend the controller drives.
func (b Builder) WithBackend(backend Backend) Builder {
	b.backend = backend
	return b
}

// WithResolver sets the resolver used to look up context devices during
// discovery.
func (b Builder) WithResolver(resolver Resolver) Builder {
	b.resolver = resolver
	return b
}

// WithDevice sets the GPU device the controller belongs to.
func (b Builder) WithDevice(device Device) Builder {
	b.device = device
	return b
}

// WithMaxUnits sets the number of translation units the controller
// supports.
func (b Builder) WithMaxUnits(n int) Builder {
	b.maxUnits = n
	return b
}

// WithMaxContextsPerUnit sets the number of contexts one translation unit
// supports.
func (b Builder) WithMaxContextsPerUnit(n int) Builder {
	b.maxContextsPerUnit = n
	return b
}

// WithIdleTimeout sets the quiescence wait used before address-space
// switches.
func (b Builder) WithIdleTimeout(d time.Duration) Builder {
	b.idleTimeout = d
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.backend == nil {
		panic("an MMU controller requires a backend")
	}

	if b.resolver == nil {
		panic("an MMU controller requires a context resolver")
	}

	if b.device == nil {
		panic("an MMU controller requires a device")
	}

	if b.maxUnits <= 0 || b.maxContextsPerUnit <= 0 {
		panic("hardware limits must be positive")
	}
}

// Build returns a newly created controller in the uninitialized state.
func (b Builder) Build(name string) *Controller {
	b.parametersMustBeValid()

	return &Controller{
		HookableBase:       hooking.NewHookableBase(),
		name:               name,
		backend:            b.backend,
		resolver:           b.resolver,
		device:             b.device,
		maxUnits:           b.maxUnits,
		maxContextsPerUnit: b.maxContextsPerUnit,
		idleTimeout:        b.idleTimeout,
	}
}
