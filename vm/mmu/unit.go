package mmu

import (
	"fmt"

	"github.com/sarchlab/gmmu/vm"
)

// Hard limits of the translation hardware. A controller never grows past
// the limits it was built with; the builder can raise them for hardware
// with more units.
const (
	// DefaultMaxUnits is the number of translation units a controller
	// supports unless configured otherwise.
	DefaultMaxUnits = 2

	// DefaultMaxContextsPerUnit is the number of context endpoints one
	// unit supports unless configured otherwise.
	DefaultMaxContextsPerUnit = 2
)

// A ContextKind tags a translation context as serving either user or
// privileged GPU accesses.
type ContextKind int

// The possible context kinds.
const (
	KindUser ContextKind = iota + 1
	KindPrivileged
)

func (k ContextKind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindPrivileged:
		return "privileged"
	default:
		return fmt.Sprintf("ContextKind(%d)", int(k))
	}
}

func (k ContextKind) valid() bool {
	return k == KindUser || k == KindPrivileged
}

// A Context is one hardware translation endpoint. It is owned by its
// unit and lives from discovery until the controller closes. A context
// is attached iff it is currently bound to the controller's active
// address space.
type Context struct {
	dev      vm.ContextDevice
	kind     ContextKind
	attached bool
}

// Name returns the platform name of the context's device.
func (c *Context) Name() string {
	return c.dev.Name()
}

// Kind returns the context's kind tag.
func (c *Context) Kind() ContextKind {
	return c.kind
}

// Attached reports whether the context is bound to the active address
// space.
func (c *Context) Attached() bool {
	return c.attached
}

// A Unit groups the translation contexts that share one address-space
// binding. Its context list is fixed after discovery.
type Unit struct {
	contexts []*Context
}

func newUnit(capacity int) *Unit {
	return &Unit{contexts: make([]*Context, 0, capacity)}
}

func (u *Unit) addContext(ctx *Context) error {
	if len(u.contexts) >= cap(u.contexts) {
		return ErrTooManyContextsPerUnit
	}

	u.contexts = append(u.contexts, ctx)
	return nil
}

// Contexts returns the unit's contexts in discovery order.
func (u *Unit) Contexts() []*Context {
	return u.contexts
}
