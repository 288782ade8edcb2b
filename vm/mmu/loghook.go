package mmu

import (
	"log"

	"github.com/sarchlab/gmmu/hooking"
	"github.com/sarchlab/gmmu/vm"
)

// A LogHook is a hook that prints controller activity to a logger.
type LogHook struct {
	*log.Logger
}

// NewLogHook returns a new LogHook which will write into the logger.
func NewLogHook(logger *log.Logger) *LogHook {
	h := new(LogHook)
	h.Logger = logger
	return h
}

// Func writes the hook event into the logger.
func (h *LogHook) Func(ctx hooking.HookCtx) {
	c, ok := ctx.Domain.(*Controller)
	if !ok {
		return
	}

	switch ctx.Pos {
	case HookPosAttach, HookPosDetach:
		h.logAttachment(c, ctx)
	case HookPosMap, HookPosUnmap:
		h.logMapping(c, ctx)
	case HookPosStateChange:
		h.logStateChange(c, ctx)
	case HookPosStart:
		as := ctx.Item.(*vm.AddressSpace)
		h.Printf("%s: started, active space %s", c.Name(), as.Token())
	case HookPosStop:
		h.Printf("%s: stopped", c.Name())
	}
}

func (h *LogHook) logAttachment(c *Controller, ctx hooking.HookCtx) {
	mmuCtx := ctx.Item.(*Context)

	if ctx.Err != nil {
		h.Printf("%s: %s %s context %s: %v",
			c.Name(), ctx.Pos.Name, mmuCtx.Kind(), mmuCtx.Name(), ctx.Err)
		return
	}

	h.Printf("%s: %s %s context %s",
		c.Name(), ctx.Pos.Name, mmuCtx.Kind(), mmuCtx.Name())
}

func (h *LogHook) logMapping(c *Controller, ctx hooking.HookCtx) {
	desc := ctx.Item.(*vm.MemoryDescriptor)

	if ctx.Err != nil {
		h.Printf("%s: %s [0x%x, 0x%x) in %v: %v", c.Name(), ctx.Pos.Name,
			desc.GPUAddr, desc.GPUAddr+desc.Size, ctx.Detail, ctx.Err)
		return
	}

	h.Printf("%s: %s [0x%x, 0x%x) in %v", c.Name(), ctx.Pos.Name,
		desc.GPUAddr, desc.GPUAddr+desc.Size, ctx.Detail)
}

func (h *LogHook) logStateChange(c *Controller, ctx hooking.HookCtx) {
	as, _ := ctx.Item.(*vm.AddressSpace)
	if as == nil {
		h.Printf("%s: switched to no address space", c.Name())
		return
	}

	h.Printf("%s: switched to address space %s", c.Name(), as.Token())
}
