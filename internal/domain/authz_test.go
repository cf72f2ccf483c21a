package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	admin := &Claim{UserID: "admin-1", Role: RoleAdmin}
	trainer := &Claim{UserID: "trainer-1", Role: RoleTrainer}
	student := &Claim{UserID: "student-1", Role: RoleStudent}

	tests := []struct {
		name    string
		claim   *Claim
		action  Action
		target  string
		allowed bool
	}{
		{"anonymous can list courts", nil, ActionListCourts, "", true},
		{"anonymous cannot mutate courts", nil, ActionMutateCourt, "", false},
		{"student can mutate courts", student, ActionMutateCourt, "", true},
		{"trainer can mutate sessions", trainer, ActionMutateSession, "", true},
		{"student can mutate profiles", student, ActionMutateProfile, "", true},

		{"anonymous cannot list users", nil, ActionListUsers, "", false},
		{"student cannot list users", student, ActionListUsers, "", false},
		{"trainer cannot list users", trainer, ActionListUsers, "", false},
		{"admin lists users", admin, ActionListUsers, "", true},

		{"admin reads any user", admin, ActionReadUser, "student-1", true},
		{"student reads own record", student, ActionReadUser, "student-1", true},
		{"student cannot read another user", student, ActionReadUser, "trainer-1", false},
		{"anonymous cannot read a user", nil, ActionReadUser, "student-1", false},

		{"trainer cannot change roles", trainer, ActionChangeUserRole, "student-1", false},
		{"student cannot change roles", student, ActionChangeUserRole, "student-1", false},
		{"admin changes roles", admin, ActionChangeUserRole, "student-1", true},

		{"admin deactivates another user", admin, ActionDeactivateUser, "student-1", true},
		{"admin cannot deactivate self", admin, ActionDeactivateUser, "admin-1", false},
		{"student cannot deactivate self", student, ActionDeactivateUser, "student-1", false},

		{"trainer cannot manage invitations", trainer, ActionManageInvites, "", false},
		{"admin manages invitations", admin, ActionManageInvites, "", true},

		{"trainer cannot mutate training plans", trainer, ActionMutatePlan, "", false},
		{"admin mutates training plans", admin, ActionMutatePlan, "", true},

		{"unknown action is denied", admin, Action("launch.missiles"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.claim, tt.action, tt.target)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrForbidden)
			}
		})
	}
}
