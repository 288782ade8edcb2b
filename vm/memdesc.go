package vm

// Log2PageSize is the translation granularity of the hardware page
// tables. All GPU addresses as assigned are page aligned, but some
// callers perturb the address with an offset, so mapping code masks with
// AlignMask before operating on a range.
const Log2PageSize = 12

// PageSize is the page size in bytes.
const PageSize uint64 = 1 << Log2PageSize

// AlignMask masks an address down to its page boundary.
const AlignMask uint64 = ^(PageSize - 1)

// AlignToPage returns addr rounded down to the containing page boundary.
func AlignToPage(addr uint64) uint64 {
	return addr & AlignMask
}

// A ScatterSegment is one physically contiguous piece of a buffer's
// backing memory.
type ScatterSegment struct {
	PAddr uint64
	Size  uint64
}

// A MemoryDescriptor describes a buffer to be mapped into an address
// space: its GPU-visible base address, its total byte size, and the
// scatter list of physical segments backing it. The descriptor is owned
// by the allocator that created the buffer; the MMU layer only reads it.
type MemoryDescriptor struct {
	GPUAddr uint64
	Size    uint64
	SG      []ScatterSegment
}

// Protection describes the access rights requested for a mapping.
type Protection uint32

// Protection bits.
const (
	ProtRead Protection = 1 << iota
	ProtWrite
)

// A ContextDevice is a handle to one hardware translation context
// endpoint, resolved from a platform context name. Concrete types are
// provided by the backend that owns the hardware.
type ContextDevice interface {
	Name() string
}
