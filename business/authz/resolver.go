// Package authz resolves which organizations an actor may read or write.
package authz

import (
	"context"

	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/organizations"
)

// Resolver computes organization scope from the ranked role model.
// Children lookups go through the organization store's read cache, which
// is what makes calling the resolver on every request affordable.
type Resolver struct {
	orgs organizations.Querier
}

func NewResolver(orgs organizations.Querier) *Resolver {
	return &Resolver{orgs: orgs}
}

// AccessibleOrganizations returns the ordered set of organization ids the
// actor may access: the home organization first, then its direct children
// for Owners. An actor whose home organization no longer exists resolves
// to an empty set; callers treat empty scope as "no visible records".
func (r *Resolver) AccessibleOrganizations(ctx context.Context, actor model.Actor) ([]string, error) {
	exists, err := r.orgs.ExistsByID(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	if !actor.Role.AtLeast(model.RoleOwner) {
		return []string{actor.OrganizationID}, nil
	}

	children, err := r.orgs.FindChildren(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}
	orgIDs := make([]string, 0, len(children)+1)
	orgIDs = append(orgIDs, actor.OrganizationID)
	for _, child := range children {
		orgIDs = append(orgIDs, child.ID)
	}
	return orgIDs, nil
}

// CanAccessOrganization reports whether the actor may access targetOrgID:
// true for the actor's own organization, or for a direct child of it when
// the actor is an Owner. It is a single-record check and does not
// materialize the accessible set.
func (r *Resolver) CanAccessOrganization(ctx context.Context, actor model.Actor, targetOrgID string) (bool, error) {
	if actor.OrganizationID == targetOrgID {
		return true, nil
	}
	if !actor.Role.AtLeast(model.RoleOwner) {
		return false, nil
	}
	target, err := r.orgs.FindByID(ctx, targetOrgID)
	if err != nil {
		return false, err
	}
	if target == nil || target.ParentID == nil {
		return false, nil
	}
	return *target.ParentID == actor.OrganizationID, nil
}
