package mmu

import "github.com/sarchlab/gmmu/hooking"

// Hook positions triggered by the controller. Diagnostic only: whether
// hooks are registered or not never changes controller behavior.
var (
	// HookPosStart triggers after the controller starts successfully.
	HookPosStart = &hooking.HookPos{Name: "Start"}

	// HookPosStop triggers after the controller stops.
	HookPosStop = &hooking.HookPos{Name: "Stop"}

	// HookPosStateChange triggers after an address-space switch
	// completes. Item is the new *vm.AddressSpace, nil included.
	HookPosStateChange = &hooking.HookPos{Name: "StateChange"}

	// HookPosAttach triggers per context attach attempt. Item is the
	// *Context; Err is set when the attach failed.
	HookPosAttach = &hooking.HookPos{Name: "Attach"}

	// HookPosDetach triggers per context detach. Item is the *Context;
	// Err carries the swallowed hardware error, if any.
	HookPosDetach = &hooking.HookPos{Name: "Detach"}

	// HookPosMap triggers after a successful mapping. Item is the
	// *vm.MemoryDescriptor.
	HookPosMap = &hooking.HookPos{Name: "Map"}

	// HookPosUnmap triggers per unmap that reached the hardware. Item is
	// the *vm.MemoryDescriptor; Err carries the swallowed error, if any.
	HookPosUnmap = &hooking.HookPos{Name: "Unmap"}

	// HookPosPagefault is reserved for fault reporting. No controller
	// path triggers it yet.
	HookPosPagefault = &hooking.HookPos{Name: "Pagefault"}
)
