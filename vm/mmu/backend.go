package mmu

import (
	"time"

	"github.com/sarchlab/gmmu/vm"
)

// A Backend implements the hardware-specific half of the MMU: translation
// domain management, context attachment, and range mapping. One
// implementation exists per hardware variant (IOMMU-backed, flat-mapped)
// and is selected when the controller is built.
type Backend interface {
	// CreateAddressSpace allocates a new hardware translation domain.
	CreateAddressSpace() (*vm.AddressSpace, error)

	// DestroyAddressSpace releases the hardware domain. Passing nil is a
	// no-op.
	DestroyAddressSpace(as *vm.AddressSpace)

	// Attach binds a translation context to an address space, activating
	// translation for that endpoint.
	Attach(dev vm.ContextDevice, as *vm.AddressSpace) error

	// Detach unbinds a translation context from an address space.
	Detach(dev vm.ContextDevice, as *vm.AddressSpace) error

	// MapRange maps a scatter list at gpuAddr in the given address space.
	MapRange(
		as *vm.AddressSpace,
		gpuAddr uint64,
		sg []vm.ScatterSegment,
		size uint64,
		prot vm.Protection,
	) error

	// UnmapRange removes the mapping for [gpuAddr, gpuAddr+size).
	UnmapRange(as *vm.AddressSpace, gpuAddr, size uint64) error
}

// A Resolver maps named hardware translation contexts, as listed in the
// platform descriptor table, to device handles.
type Resolver interface {
	ResolveContext(name string) (vm.ContextDevice, error)
}

// A Device gives the controller access to the GPU it manages. The caller
// of every controller operation holds the device's global serialization
// lock; the controller never locks on its own.
type Device interface {
	// Idle blocks until the device's command pipeline is quiescent. The
	// controller waits unconditionally before switching address spaces.
	Idle(timeout time.Duration)

	// RegWrite writes a hardware register.
	RegWrite(reg uint32, value uint32)
}

// RegMMUConfig is the MMU configuration register. The controller resets
// it to zero on start.
const RegMMUConfig uint32 = 0x0040

// DefaultIdleTimeout bounds the quiescence wait before an address-space
// switch.
const DefaultIdleTimeout = 400 * time.Millisecond
