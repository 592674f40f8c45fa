package permission

import (
	"fmt"

	"privstore/internal/domain/user"
)

// Resources and actions checked by the HTTP layer.
const (
	ResourcePurchases        = "purchases"
	ResourcePurchaseRequests = "purchase_requests"
	ResourceUsers            = "users"
	ResourceProfile          = "profile"

	ActionCreate  = "create"
	ActionRead    = "read"
	ActionList    = "list"
	ActionApprove = "approve"
	ActionReject  = "reject"
)

var defaultPolicies = [][]string{
	{user.RolePlayer, ResourceProfile, ActionRead},
	{user.RolePlayer, ResourcePurchases, ActionCreate},

	{user.RoleAdmin, ResourcePurchaseRequests, ActionList},
	{user.RoleAdmin, ResourcePurchaseRequests, ActionApprove},
	{user.RoleAdmin, ResourcePurchaseRequests, ActionReject},
	{user.RoleAdmin, ResourceUsers, ActionList},
}

// SeedDefaultPolicies stores the built-in policies. Existing rows are kept,
// so it is safe to run on every start.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, policy := range defaultPolicies {
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	// admins can do everything players can
	if _, err := e.enforcer.AddGroupingPolicy(user.RoleAdmin, user.RolePlayer); err != nil {
		return fmt.Errorf("failed to add role inheritance: %w", err)
	}

	e.logger.Infow("permission policies seeded", "count", len(defaultPolicies))
	return nil
}
