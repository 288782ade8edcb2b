// Package tracing records MMU controller activity into a DataRecorder so
// that bring-up sequences can be inspected offline.
package tracing

import (
	"time"

	"github.com/sarchlab/gmmu/datarecording"
	"github.com/sarchlab/gmmu/hooking"
	"github.com/sarchlab/gmmu/vm"
	"github.com/sarchlab/gmmu/vm/mmu"
)

type eventEntry struct {
	Time       float64
	Controller string
	Pos        string
	Context    string
	Kind       string
	Space      string
	GPUAddr    uint64
	Size       uint64
	Err        string
}

// A Recorder is a hook that writes one row per controller event into a
// recording backend. Register it on a controller with AcceptHook.
type Recorder struct {
	backend   datarecording.DataRecorder
	tableName string
	startTime time.Time
}

// NewRecorder creates a Recorder writing into the mmu_events table of the
// given backend.
func NewRecorder(backend datarecording.DataRecorder) *Recorder {
	r := &Recorder{
		backend:   backend,
		tableName: "mmu_events",
		startTime: time.Now(),
	}

	backend.CreateTable(r.tableName, eventEntry{})

	return r
}

// Func records the hook event.
func (r *Recorder) Func(ctx hooking.HookCtx) {
	c, ok := ctx.Domain.(*mmu.Controller)
	if !ok {
		return
	}

	entry := eventEntry{
		Time:       time.Since(r.startTime).Seconds(),
		Controller: c.Name(),
		Pos:        ctx.Pos.Name,
	}

	switch item := ctx.Item.(type) {
	case *mmu.Context:
		entry.Context = item.Name()
		entry.Kind = item.Kind().String()
	case *vm.MemoryDescriptor:
		entry.GPUAddr = item.GPUAddr
		entry.Size = item.Size
	case *vm.AddressSpace:
		// A nil space is a valid item: switching to no address space.
		if item != nil {
			entry.Space = string(item.Token())
		}
	}

	if tok, ok := ctx.Detail.(vm.Token); ok {
		entry.Space = string(tok)
	}

	if ctx.Err != nil {
		entry.Err = ctx.Err.Error()
	}

	r.backend.InsertData(r.tableName, entry)
}
