package domain

import "errors"

// ErrForbidden is returned by Authorize when the claim does not permit the
// requested action.
var ErrForbidden = errors.New("forbidden")

// Action identifies an operation gated by the authorization policy.
type Action string

const (
	ActionListUsers       Action = "users.list"
	ActionCreateUser      Action = "users.create"
	ActionReadUser        Action = "users.read"
	ActionUpdateUser      Action = "users.update"
	ActionChangeUserRole  Action = "users.change_role"
	ActionDeactivateUser  Action = "users.deactivate"
	ActionManageInvites   Action = "invitations.manage"
	ActionListCourts      Action = "courts.list"
	ActionMutateCourt     Action = "courts.mutate"
	ActionMutateSession   Action = "sessions.mutate"
	ActionMutateProfile   Action = "profiles.mutate"
	ActionMutatePlan      Action = "training_plans.mutate"
	ActionReadResource    Action = "resources.read"
)

// policyKind classifies how an action is gated.
type policyKind int

const (
	public policyKind = iota
	authenticated
	adminOnly
	adminOrSelf
	adminNotSelf
)

// policies is the single authorization table consulted for every action.
// Court and session mutation deliberately require only authentication, not
// a specific role, while user management and invitations require admin;
// the asymmetry comes from the product surface and is preserved as-is.
var policies = map[Action]policyKind{
	ActionListUsers:      adminOnly,
	ActionCreateUser:     adminOnly,
	ActionReadUser:       adminOrSelf,
	ActionUpdateUser:     adminOnly,
	ActionChangeUserRole: adminOnly,
	ActionDeactivateUser: adminNotSelf,
	ActionManageInvites:  adminOnly,
	ActionListCourts:     public,
	ActionMutateCourt:    authenticated,
	ActionMutateSession:  authenticated,
	ActionMutateProfile:  authenticated,
	ActionMutatePlan:     adminOnly,
	ActionReadResource:   authenticated,
}

// Authorize decides whether the claim may perform the action. A nil claim
// means the request is unauthenticated. targetUserID is consulted only by
// self-relative policies and may be empty otherwise.
//
// Self-deactivation is always denied, even for admins.
func Authorize(claim *Claim, action Action, targetUserID string) error {
	kind, ok := policies[action]
	if !ok {
		return ErrForbidden
	}
	switch kind {
	case public:
		return nil
	case authenticated:
		if claim == nil {
			return ErrForbidden
		}
		return nil
	case adminOnly:
		if claim == nil || claim.Role != RoleAdmin {
			return ErrForbidden
		}
		return nil
	case adminOrSelf:
		if claim == nil {
			return ErrForbidden
		}
		if claim.Role == RoleAdmin || claim.UserID == targetUserID {
			return nil
		}
		return ErrForbidden
	case adminNotSelf:
		if claim == nil || claim.Role != RoleAdmin {
			return ErrForbidden
		}
		if claim.UserID == targetUserID {
			return ErrForbidden
		}
		return nil
	}
	return ErrForbidden
}
