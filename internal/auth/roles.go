package auth

import (
	"github.com/mmarinn/dayder/internal/store"
)

// RoleGate is a reusable authorization check over a fixed set of allowed
// roles. One instance serves any number of routes requiring that set.
type RoleGate struct {
	allowed map[store.Role]struct{}
}

// RequireRoles builds a gate that admits actors holding any of the given
// roles.
func RequireRoles(roles ...store.Role) *RoleGate {
	allowed := make(map[store.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return &RoleGate{allowed: allowed}
}

// Check returns the actor unchanged when its role is in the allowed set,
// and ErrNotEnoughPermissions otherwise. A record without a role counts
// as a regular user.
func (g *RoleGate) Check(actor *store.User) (*store.User, error) {
	if actor == nil {
		return nil, ErrNotEnoughPermissions
	}
	if _, ok := g.allowed[actor.EffectiveRole()]; !ok {
		return nil, ErrNotEnoughPermissions
	}
	return actor, nil
}
