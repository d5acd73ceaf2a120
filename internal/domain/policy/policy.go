// Package policy declares the role capability table for the system.
// Handlers consult one authoritative mapping of (action, role) instead of
// repeating literal role lists, so a permission change happens in exactly
// one place.
package policy

import "vms/internal/domain/entity"

// Action identifies a guarded operation.
type Action string

const (
	ActionUserCreate Action = "user.create"
	ActionUserList   Action = "user.list"
	ActionUserDelete Action = "user.delete"

	ActionVisitCreate   Action = "visit.create"
	ActionVisitCheckOut Action = "visit.checkout"
	ActionVisitDelete   Action = "visit.delete"
	ActionVisitList     Action = "visit.list"
	ActionVisitOwnList  Action = "visit.list-own"
	ActionVisitStats    Action = "visit.stats"
	ActionPurposeList   Action = "visit.purposes"

	ActionScheduleManage    Action = "schedule.manage"
	ActionScheduleManageAny Action = "schedule.manage-any"

	ActionNotificationSubscribe Action = "notification.subscribe"
	ActionNotificationRead      Action = "notification.read"
	ActionDeviceRegister        Action = "device.register"
)

// capabilities is the authoritative capability table. A missing entry means
// the action is denied for every role.
var capabilities = map[Action]entity.Roles{
	ActionUserCreate: {entity.RoleSuperAdmin, entity.RoleAdmin},
	ActionUserList:   {entity.RoleSuperAdmin, entity.RoleAdmin},
	ActionUserDelete: {entity.RoleSuperAdmin, entity.RoleAdmin},

	ActionVisitCreate:   {entity.RoleSoldier},
	ActionVisitCheckOut: {entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleSoldier},
	ActionVisitDelete:   {entity.RoleSuperAdmin, entity.RoleAdmin},
	ActionVisitList:     {entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleSoldier},
	ActionVisitOwnList:  {entity.RoleHost},
	ActionVisitStats:    {entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleSoldier},
	ActionPurposeList:   {entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleSoldier},

	ActionScheduleManage:    {entity.RoleHost, entity.RoleReceptionist},
	ActionScheduleManageAny: {entity.RoleReceptionist},

	ActionNotificationSubscribe: {entity.RoleHost, entity.RoleReceptionist},
	ActionNotificationRead:      {entity.RoleHost, entity.RoleReceptionist},
	ActionDeviceRegister:        {entity.RoleHost, entity.RoleReceptionist},
}

// Allows reports whether the given role may perform the action.
func Allows(action Action, role entity.Role) bool {
	allowed, ok := capabilities[action]
	if !ok {
		return false
	}

	return allowed.Contains(role)
}

// RolesFor returns the roles permitted to perform the action.
func RolesFor(action Action) entity.Roles {
	return capabilities[action]
}
