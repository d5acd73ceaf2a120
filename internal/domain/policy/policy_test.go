package policy

import (
	"testing"

	"vms/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAllows(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		role   entity.Role
		want   bool
	}{
		{"soldier creates visits", ActionVisitCreate, entity.RoleSoldier, true},
		{"admin cannot create visits", ActionVisitCreate, entity.RoleAdmin, false},
		{"host cannot create visits", ActionVisitCreate, entity.RoleHost, false},
		{"admin checks out", ActionVisitCheckOut, entity.RoleAdmin, true},
		{"soldier checks out", ActionVisitCheckOut, entity.RoleSoldier, true},
		{"receptionist cannot check out", ActionVisitCheckOut, entity.RoleReceptionist, false},
		{"only admins delete visits", ActionVisitDelete, entity.RoleSoldier, false},
		{"super admin deletes visits", ActionVisitDelete, entity.RoleSuperAdmin, true},
		{"host manages own schedule", ActionScheduleManage, entity.RoleHost, true},
		{"soldier cannot manage schedules", ActionScheduleManage, entity.RoleSoldier, false},
		{"receptionist manages any schedule", ActionScheduleManageAny, entity.RoleReceptionist, true},
		{"host cannot manage other schedules", ActionScheduleManageAny, entity.RoleHost, false},
		{"host subscribes to notifications", ActionNotificationSubscribe, entity.RoleHost, true},
		{"receptionist reads notifications", ActionNotificationRead, entity.RoleReceptionist, true},
		{"admin does not read host notifications", ActionNotificationRead, entity.RoleAdmin, false},
		{"admin creates users", ActionUserCreate, entity.RoleAdmin, true},
		{"receptionist cannot create users", ActionUserCreate, entity.RoleReceptionist, false},
		{"unknown action denied", Action("report.generate"), entity.RoleSuperAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allows(tt.action, tt.role))
		})
	}
}

func TestRolesFor(t *testing.T) {
	roles := RolesFor(ActionVisitCreate)
	assert.Equal(t, entity.Roles{entity.RoleSoldier}, roles)

	assert.Empty(t, RolesFor(Action("nonexistent")))
}
