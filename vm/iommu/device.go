package iommu

import (
	"fmt"

	"github.com/sarchlab/gmmu/vm"
)

// A ContextDevice is the handle to one IOMMU context bank. It implements
// vm.ContextDevice.
type ContextDevice struct {
	name    string
	boundTo *domain
}

// NewContextDevice creates a handle for the named context bank.
func NewContextDevice(name string) *ContextDevice {
	return &ContextDevice{name: name}
}

// Name returns the platform name of the context bank.
func (d *ContextDevice) Name() string {
	return d.name
}

// Bound reports whether the device is currently bound to a domain.
func (d *ContextDevice) Bound() bool {
	return d.boundTo != nil
}

// A Resolver resolves platform context names against the set of IOMMU
// context banks it was built with. It satisfies mmu.Resolver.
type Resolver struct {
	devices map[string]*ContextDevice
}

// NewResolver creates a resolver over the given context devices.
func NewResolver(devices ...*ContextDevice) *Resolver {
	r := &Resolver{devices: make(map[string]*ContextDevice)}
	for _, d := range devices {
		r.devices[d.Name()] = d
	}

	return r
}

// ResolveContext returns the device handle for a context name.
func (r *Resolver) ResolveContext(name string) (vm.ContextDevice, error) {
	d, ok := r.devices[name]
	if !ok {
		return nil, fmt.Errorf("no IOMMU context named %s", name)
	}

	return d, nil
}
