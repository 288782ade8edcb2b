package mmu

import "fmt"

// A ContextDescriptor names one hardware translation context in the
// platform descriptor table. Descriptors with an empty name are ignored
// during discovery.
type ContextDescriptor struct {
	Name string
	Kind ContextKind
}

// A UnitDescriptor describes one translation unit in the platform
// descriptor table.
type UnitDescriptor struct {
	Contexts []ContextDescriptor
}

// A DescriptorTable lists the translation units of the platform. Unit
// identity is positional: the serial number of a descriptor is the ID of
// the unit it describes.
type DescriptorTable []UnitDescriptor

// discover resolves the descriptor table to units and contexts. It
// returns the complete unit set or an error; partial results are never
// returned.
func (c *Controller) discover(table DescriptorTable) ([]*Unit, error) {
	if len(table) > c.maxUnits {
		return nil, ErrTooManyUnits
	}

	units := make([]*Unit, 0, c.maxUnits)
	for i := range table {
		unit, err := c.discoverUnit(&table[i])
		if err != nil {
			return nil, err
		}

		units = append(units, unit)
	}

	return units, nil
}

func (c *Controller) discoverUnit(desc *UnitDescriptor) (*Unit, error) {
	if len(desc.Contexts) > c.maxContextsPerUnit {
		return nil, ErrTooManyContextsPerUnit
	}

	unit := newUnit(c.maxContextsPerUnit)
	for _, ctxDesc := range desc.Contexts {
		if ctxDesc.Name == "" {
			continue
		}

		dev, err := c.resolver.ResolveContext(ctxDesc.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v",
				ErrContextNotFound, ctxDesc.Name, err)
		}

		if !ctxDesc.Kind.valid() {
			return nil, fmt.Errorf("%w: %s has kind %d",
				ErrInvalidContextKind, ctxDesc.Name, int(ctxDesc.Kind))
		}

		err = unit.addContext(&Context{dev: dev, kind: ctxDesc.Kind})
		if err != nil {
			return nil, err
		}
	}

	return unit, nil
}
