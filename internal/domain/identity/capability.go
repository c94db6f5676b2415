package identity

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is the coarse account type stored on a user
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Capability is a single permission checked at the HTTP boundary
type Capability string

const (
	CapStockRead      Capability = "stock:read"
	CapStockWrite     Capability = "stock:write"
	CapLedgerPurchase Capability = "ledger:purchase"
	CapLedgerTransfer Capability = "ledger:transfer"
	CapLedgerSell     Capability = "ledger:sell"
	CapLedgerAdjust   Capability = "ledger:adjust"
	CapRequestsCreate Capability = "requests:create"
	CapRequestsManage Capability = "requests:manage"
	CapReportsRead    Capability = "reports:read"
	CapUsersList      Capability = "users:list"
	CapUsersDelete    Capability = "users:delete"
)

var staffCapabilities = []Capability{
	CapStockRead,
	CapLedgerTransfer,
	CapLedgerSell,
	CapRequestsCreate,
}

var adminCapabilities = append(append([]Capability{}, staffCapabilities...),
	CapStockWrite,
	CapLedgerPurchase,
	CapLedgerAdjust,
	CapRequestsManage,
	CapReportsRead,
	CapUsersList,
)

var roleCapabilities = map[Role]CapabilitySet{
	RoleUser:       NewCapabilitySet(staffCapabilities...),
	RoleAdmin:      NewCapabilitySet(adminCapabilities...),
	RoleSuperAdmin: NewCapabilitySet(append(append([]Capability{}, adminCapabilities...), CapUsersDelete)...),
}

// CapabilitySet is an immutable set of capabilities
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given capabilities
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Has reports membership
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// CapabilitiesFor returns the capability set granted to a role; unknown roles
// get an empty set.
func CapabilitiesFor(r Role) CapabilitySet {
	if set, ok := roleCapabilities[r]; ok {
		return set
	}
	return CapabilitySet{}
}

// Principal is the authenticated caller
type Principal struct {
	UserID uuid.UUID
	Name   string
	Role   Role
}

// Can reports whether the principal's role grants c
func (p Principal) Can(c Capability) bool {
	return CapabilitiesFor(p.Role).Has(c)
}

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize checks a single capability
func Authorize(p Principal, c Capability) Decision {
	if p.UserID == uuid.Nil {
		return Decision{Reason: "not authenticated"}
	}
	if !p.Can(c) {
		return Decision{Reason: fmt.Sprintf("role %q lacks capability %q", p.Role, c)}
	}
	return Decision{Allowed: true}
}

// AuthorizeOwner allows the owner of a resource, or anyone holding override
func AuthorizeOwner(p Principal, ownerID uuid.UUID, override Capability) Decision {
	if p.UserID == uuid.Nil {
		return Decision{Reason: "not authenticated"}
	}
	if p.UserID == ownerID {
		return Decision{Allowed: true}
	}
	if p.Can(override) {
		return Decision{Allowed: true}
	}
	return Decision{Reason: "only the owner may modify this resource"}
}
