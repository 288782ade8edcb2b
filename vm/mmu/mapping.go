package mmu

import (
	"github.com/sarchlab/gmmu/hooking"
	"github.com/sarchlab/gmmu/vm"
)

// Map maps the descriptor's scatter list at its GPU-visible base address
// in the given address space.
//
// The prot argument is accepted but not forwarded: the hardware mapping
// is always read+write. Downstream callers depend on this, so it must not
// be changed to honor prot.
func (c *Controller) Map(
	as *vm.AddressSpace,
	desc *vm.MemoryDescriptor,
	prot vm.Protection,
) error {
	if as == nil {
		panic("mapping into a nil address space")
	}

	_ = prot
	err := c.backend.MapRange(
		as, desc.GPUAddr, desc.SG, desc.Size, vm.ProtRead|vm.ProtWrite)
	if err != nil {
		return &MapError{GPUAddr: desc.GPUAddr, Size: desc.Size, Err: err}
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosMap,
		Item:   desc,
		Detail: as.Token(),
	})

	return nil
}

// Unmap removes the descriptor's range from the given address space. It
// succeeds without touching the hardware when the range is empty or the
// page-aligned base address is zero. Hardware unmap errors are reported
// through hooks and otherwise ignored, mirroring detach: unmap runs on
// teardown paths that must not fail.
func (c *Controller) Unmap(
	as *vm.AddressSpace,
	desc *vm.MemoryDescriptor,
) error {
	gpuAddr := vm.AlignToPage(desc.GPUAddr)
	if desc.Size == 0 || gpuAddr == 0 {
		return nil
	}

	err := c.backend.UnmapRange(as, gpuAddr, desc.Size)
	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosUnmap,
		Item:   desc,
		Detail: as.Token(),
		Err:    err,
	})

	return nil
}
