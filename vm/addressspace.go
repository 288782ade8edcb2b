// Package vm defines the entities shared between the MMU controller and
// its hardware backends: address spaces, identity tokens, and memory
// descriptors.
package vm

import "github.com/rs/xid"

// A Token uniquely identifies an AddressSpace instance. Tokens are opaque;
// external callers only compare them. The zero Token matches nothing.
type Token string

// An AddressSpace is a hardware translation domain that maps GPU-visible
// addresses to physical memory. It is created and destroyed by a Backend;
// the controller only routes attachments and mappings to it.
//
// The reference count is owned by the creator. The controller retains the
// default address space while it is in use and releases it on Close.
type AddressSpace struct {
	token Token

	// Spec is the backend-private translation state. Only the backend
	// that created the address space may interpret it.
	Spec interface{}

	refCount int
}

// NewAddressSpace creates an address space with a fresh identity token.
// Backends call this from their CreateAddressSpace implementation. The
// returned space starts with a reference count of one.
func NewAddressSpace(spec interface{}) *AddressSpace {
	return &AddressSpace{
		token:    Token(xid.New().String()),
		Spec:     spec,
		refCount: 1,
	}
}

// Token returns the identity token of the address space.
func (as *AddressSpace) Token() Token {
	return as.token
}

// MatchesToken reports whether the address space's identity token equals
// tok. It is false for a nil space and for the zero token, so a stale or
// unset token never matches.
func (as *AddressSpace) MatchesToken(tok Token) bool {
	if as == nil || tok == "" {
		return false
	}
	return as.token == tok
}

// Retain increments the reference count and returns the space for
// chaining.
func (as *AddressSpace) Retain() *AddressSpace {
	as.refCount++
	return as
}

// Release decrements the reference count and reports whether this was the
// last reference, in which case the owner must destroy the space through
// the backend that created it.
func (as *AddressSpace) Release() (last bool) {
	if as.refCount <= 0 {
		panic("address space released more times than retained")
	}

	as.refCount--
	return as.refCount == 0
}
