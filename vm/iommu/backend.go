// Package iommu provides the IOMMU-backed MMU backend. Each address
// space owns an IOMMU domain with real per-page bookkeeping, and context
// devices attach to at most one domain at a time, the way the hardware
// IOMMU driver behaves.
package iommu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sarchlab/gmmu/vm"
)

// A Backend drives IOMMU-style translation domains. It satisfies
// mmu.Backend.
type Backend struct {
	mu      sync.Mutex
	domains map[vm.Token]*domain
}

// A domain is the backend-private translation state of one address
// space.
type domain struct {
	pages    map[uint64]pageEntry // keyed by page-aligned GPU address
	attached map[string]*ContextDevice
}

type pageEntry struct {
	pAddr uint64
	prot  vm.Protection
}

// NewBackend creates an IOMMU backend with no domains.
func NewBackend() *Backend {
	return &Backend{domains: make(map[vm.Token]*domain)}
}

// CreateAddressSpace allocates a new IOMMU domain.
func (b *Backend) CreateAddressSpace() (*vm.AddressSpace, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := &domain{
		pages:    make(map[uint64]pageEntry),
		attached: make(map[string]*ContextDevice),
	}
	as := vm.NewAddressSpace(d)
	b.domains[as.Token()] = d

	return as, nil
}

// DestroyAddressSpace frees the domain behind the address space. Passing
// nil is a no-op.
func (b *Backend) DestroyAddressSpace(as *vm.AddressSpace) {
	if as == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.domains, as.Token())
}

func (b *Backend) domainOf(as *vm.AddressSpace) (*domain, error) {
	if as == nil {
		return nil, errors.New("nil address space")
	}

	d, ok := as.Spec.(*domain)
	if !ok {
		return nil, errors.New("address space was not created by this backend")
	}

	return d, nil
}

// Attach binds a context device to the address space's domain. A device
// already bound to a different domain cannot be attached.
func (b *Backend) Attach(dev vm.ContextDevice, as *vm.AddressSpace) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, err := b.domainOf(as)
	if err != nil {
		return err
	}

	cd, ok := dev.(*ContextDevice)
	if !ok {
		return fmt.Errorf("context %s is not an IOMMU device", dev.Name())
	}

	if cd.boundTo != nil && cd.boundTo != d {
		return fmt.Errorf("context %s is bound to another domain", cd.Name())
	}

	cd.boundTo = d
	d.attached[cd.Name()] = cd

	return nil
}

// Detach unbinds a context device from the address space's domain.
func (b *Backend) Detach(dev vm.ContextDevice, as *vm.AddressSpace) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, err := b.domainOf(as)
	if err != nil {
		return err
	}

	cd, ok := dev.(*ContextDevice)
	if !ok {
		return fmt.Errorf("context %s is not an IOMMU device", dev.Name())
	}

	if cd.boundTo != d {
		return fmt.Errorf("context %s is not bound to this domain", cd.Name())
	}

	cd.boundTo = nil
	delete(d.attached, cd.Name())

	return nil
}

// MapRange installs page entries for size bytes of the scatter list,
// starting at gpuAddr. Overlapping an existing mapping is an error and
// leaves the pages installed so far in place, matching the hardware
// driver's no-rollback behavior.
func (b *Backend) MapRange(
	as *vm.AddressSpace,
	gpuAddr uint64,
	sg []vm.ScatterSegment,
	size uint64,
	prot vm.Protection,
) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, err := b.domainOf(as)
	if err != nil {
		return err
	}

	vAddr := vm.AlignToPage(gpuAddr)
	left := size

	for _, seg := range sg {
		pAddr := seg.PAddr
		segLeft := seg.Size

		for segLeft > 0 && left > 0 {
			if _, taken := d.pages[vAddr]; taken {
				return fmt.Errorf("page 0x%x is already mapped", vAddr)
			}

			d.pages[vAddr] = pageEntry{pAddr: pAddr, prot: prot}
			vAddr += vm.PageSize
			pAddr += vm.PageSize
			segLeft -= min(segLeft, vm.PageSize)
			left -= min(left, vm.PageSize)
		}
	}

	if left > 0 {
		return fmt.Errorf("scatter list is %d bytes short of the range", left)
	}

	return nil
}

// UnmapRange removes the page entries covering [gpuAddr, gpuAddr+size).
// Ranges that are not fully mapped produce an error; the pages that were
// mapped are removed regardless.
func (b *Backend) UnmapRange(as *vm.AddressSpace, gpuAddr, size uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, err := b.domainOf(as)
	if err != nil {
		return err
	}

	var missing int
	for vAddr := vm.AlignToPage(gpuAddr); vAddr < gpuAddr+size; vAddr += vm.PageSize {
		if _, ok := d.pages[vAddr]; !ok {
			missing++
			continue
		}
		delete(d.pages, vAddr)
	}

	if missing > 0 {
		return fmt.Errorf("%d pages in [0x%x, 0x%x) were not mapped",
			missing, gpuAddr, gpuAddr+size)
	}

	return nil
}

// Translate resolves a GPU-visible address to a physical address in the
// given address space. The bool reports whether the address is mapped.
func (b *Backend) Translate(as *vm.AddressSpace, gpuAddr uint64) (uint64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, err := b.domainOf(as)
	if err != nil {
		return 0, false
	}

	entry, ok := d.pages[vm.AlignToPage(gpuAddr)]
	if !ok {
		return 0, false
	}

	return entry.pAddr + (gpuAddr & ^vm.AlignMask), true
}

// MappedPageCount returns the number of pages currently mapped in the
// address space.
func (b *Backend) MappedPageCount(as *vm.AddressSpace) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, err := b.domainOf(as)
	if err != nil {
		return 0
	}

	return len(d.pages)
}

// AttachedContexts returns the names of the context devices bound to the
// address space's domain.
func (b *Backend) AttachedContexts(as *vm.AddressSpace) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, err := b.domainOf(as)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(d.attached))
	for name := range d.attached {
		names = append(names, name)
	}

	return names
}
