// Package flat provides the flat-mapped MMU backend: GPU-visible
// addresses equal physical addresses, so mapping is validation plus
// bookkeeping rather than page-table manipulation. It serves hardware
// without an IOMMU in front of the GPU.
package flat

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sarchlab/gmmu/vm"
)

// A Backend drives flat-mapped translation. It satisfies mmu.Backend.
type Backend struct {
	mu sync.Mutex
}

type flatState struct {
	attached    map[string]vm.ContextDevice
	mappedBytes uint64
}

// NewBackend creates a flat-mapped backend.
func NewBackend() *Backend {
	return &Backend{}
}

// CreateAddressSpace allocates a flat translation domain.
func (b *Backend) CreateAddressSpace() (*vm.AddressSpace, error) {
	return vm.NewAddressSpace(&flatState{
		attached: make(map[string]vm.ContextDevice),
	}), nil
}

// DestroyAddressSpace releases the domain. Passing nil is a no-op.
func (b *Backend) DestroyAddressSpace(as *vm.AddressSpace) {
	if as == nil {
		return
	}

	as.Spec = nil
}

func stateOf(as *vm.AddressSpace) (*flatState, error) {
	if as == nil {
		return nil, errors.New("nil address space")
	}

	s, ok := as.Spec.(*flatState)
	if !ok {
		return nil, errors.New("address space was not created by this backend")
	}

	return s, nil
}

// Attach records the context as bound to the address space. Flat
// translation has no per-context hardware state beyond the binding.
func (b *Backend) Attach(dev vm.ContextDevice, as *vm.AddressSpace) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := stateOf(as)
	if err != nil {
		return err
	}

	s.attached[dev.Name()] = dev
	return nil
}

// Detach removes the context's binding.
func (b *Backend) Detach(dev vm.ContextDevice, as *vm.AddressSpace) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := stateOf(as)
	if err != nil {
		return err
	}

	delete(s.attached, dev.Name())
	return nil
}

// MapRange validates that the scatter list places the buffer at its
// GPU-visible address. Flat translation cannot relocate memory, so every
// segment must sit exactly where the GPU will look for it.
func (b *Backend) MapRange(
	as *vm.AddressSpace,
	gpuAddr uint64,
	sg []vm.ScatterSegment,
	size uint64,
	_ vm.Protection,
) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := stateOf(as)
	if err != nil {
		return err
	}

	cursor := gpuAddr
	for _, seg := range sg {
		if seg.PAddr != cursor {
			return fmt.Errorf(
				"segment at 0x%x is not identity-placed (want 0x%x)",
				seg.PAddr, cursor)
		}
		cursor += seg.Size
	}

	if cursor < gpuAddr+size {
		return fmt.Errorf("scatter list covers only %d of %d bytes",
			cursor-gpuAddr, size)
	}

	s.mappedBytes += size
	return nil
}

// UnmapRange releases the bookkeeping for the range.
func (b *Backend) UnmapRange(as *vm.AddressSpace, _, size uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := stateOf(as)
	if err != nil {
		return err
	}

	if size > s.mappedBytes {
		s.mappedBytes = 0
		return nil
	}

	s.mappedBytes -= size
	return nil
}

// MappedBytes returns the number of bytes currently accounted as mapped
// in the address space.
func (b *Backend) MappedBytes(as *vm.AddressSpace) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := stateOf(as)
	if err != nil {
		return 0
	}

	return s.mappedBytes
}

// AttachedContexts returns the names of the bound contexts.
func (b *Backend) AttachedContexts(as *vm.AddressSpace) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := stateOf(as)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(s.attached))
	for name := range s.attached {
		names = append(names, name)
	}

	return names
}

// A ContextDevice is a flat-translation context endpoint.
type ContextDevice struct {
	name string
}

// NewContextDevice creates a handle for the named context.
func NewContextDevice(name string) *ContextDevice {
	return &ContextDevice{name: name}
}

// Name returns the context name.
func (d *ContextDevice) Name() string {
	return d.name
}

// A Resolver resolves context names to flat context devices. It never
// fails: flat translation has no per-context hardware to discover.
type Resolver struct{}

// ResolveContext returns a handle for the named context.
func (Resolver) ResolveContext(name string) (vm.ContextDevice, error) {
	return NewContextDevice(name), nil
}
