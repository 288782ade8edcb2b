package mmu

import "github.com/sarchlab/gmmu/hooking"

// attachAll binds every not-yet-attached context of every unit to the
// active address space. The first failure aborts the remaining work and
// is returned; contexts attached before the failure stay attached. There
// is no rollback: partial attachment is tolerated because detach is
// idempotent and always retried on the next stop or switch.
func (c *Controller) attachAll() error {
	for _, unit := range c.units {
		for _, ctx := range unit.contexts {
			if ctx.attached {
				continue
			}

			if err := c.backend.Attach(ctx.dev, c.activeSpace); err != nil {
				attachErr := &AttachError{Context: ctx.Name(), Err: err}
				c.InvokeHook(hooking.HookCtx{
					Domain: c,
					Pos:    HookPosAttach,
					Item:   ctx,
					Err:    attachErr,
				})
				return attachErr
			}

			ctx.attached = true
			c.InvokeHook(hooking.HookCtx{
				Domain: c,
				Pos:    HookPosAttach,
				Item:   ctx,
				Detail: c.activeSpace.Token(),
			})
		}
	}

	return nil
}

// detachAll unbinds every attached context from the active address
// space. Hardware errors are reported through hooks and otherwise
// ignored: teardown must never fail.
func (c *Controller) detachAll() {
	for _, unit := range c.units {
		for _, ctx := range unit.contexts {
			if !ctx.attached {
				continue
			}

			err := c.backend.Detach(ctx.dev, c.activeSpace)
			ctx.attached = false

			c.InvokeHook(hooking.HookCtx{
				Domain: c,
				Pos:    HookPosDetach,
				Item:   ctx,
				Err:    err,
			})
		}
	}
}
