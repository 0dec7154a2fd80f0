package services

import (
	"fmt"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// Operation names a resource and verb pair. The string form appears in forbidden errors.
type Operation string

const (
	OpCategoryCreate Operation = "category:create"
	OpCategoryUpdate Operation = "category:update"
	OpCategoryDelete Operation = "category:delete"
	OpCategoryRead   Operation = "category:read"

	OpDepartmentCreate Operation = "department:create"
	OpDepartmentUpdate Operation = "department:update"
	OpDepartmentDelete Operation = "department:delete"
	OpDepartmentRead   Operation = "department:read"

	OpStatusList Operation = "status:list"

	OpPackageCreate  Operation = "package:create"
	OpPackageUpdate  Operation = "package:update"
	OpPackageArchive Operation = "package:archive"
	OpPackageRead    Operation = "package:read"

	OpUserCreatePrivileged Operation = "user:create-privileged"
	OpUserCreateClient     Operation = "user:create-client"
	OpUserUpdateAdmin      Operation = "user:update-admin"
	OpUserUpdateManager    Operation = "user:update-manager"
	OpUserUpdateClient     Operation = "user:update-client"
	OpUserDeleteAdmin      Operation = "user:delete-admin"
	OpUserDeleteManager    Operation = "user:delete-manager"
	OpUserDeleteClient     Operation = "user:delete-client"
	OpUserRead             Operation = "user:read"
	OpUserMe               Operation = "user:me"
)

// Grant is the outcome of a policy lookup.
type Grant int

const (
	// Deny is the zero value so that anything missing from the table is forbidden.
	Deny Grant = iota
	Allow
	// AllowOwn permits the operation only on resources the caller is a party to.
	AllowOwn
)

func (g Grant) String() string {
	switch g {
	case Allow:
		return "Allow"
	case AllowOwn:
		return "AllowOwn"
	default:
		return "Deny"
	}
}

var (
	staffOnly = map[kernel.Role]Grant{
		kernel.RoleAdmin:   Allow,
		kernel.RoleManager: Allow,
	}
	adminOnly = map[kernel.Role]Grant{
		kernel.RoleAdmin: Allow,
	}
	everyone = map[kernel.Role]Grant{
		kernel.RoleAdmin:   Allow,
		kernel.RoleManager: Allow,
		kernel.RoleClient:  Allow,
	}
	nobody = map[kernel.Role]Grant{}
)

var defaultGrants = map[Operation]map[kernel.Role]Grant{
	OpCategoryCreate: adminOnly,
	OpCategoryUpdate: adminOnly,
	OpCategoryDelete: adminOnly,
	OpCategoryRead:   everyone,

	OpDepartmentCreate: staffOnly,
	OpDepartmentUpdate: staffOnly,
	OpDepartmentDelete: staffOnly,
	OpDepartmentRead:   everyone,

	OpStatusList: staffOnly,

	OpPackageCreate:  staffOnly,
	OpPackageUpdate:  staffOnly,
	OpPackageArchive: staffOnly,
	OpPackageRead: {
		kernel.RoleAdmin:   Allow,
		kernel.RoleManager: Allow,
		kernel.RoleClient:  AllowOwn,
	},

	OpUserCreatePrivileged: adminOnly,
	OpUserCreateClient:     staffOnly,
	OpUserUpdateAdmin:      nobody,
	OpUserUpdateManager:    adminOnly,
	OpUserUpdateClient:     staffOnly,
	OpUserDeleteAdmin:      adminOnly,
	OpUserDeleteManager:    adminOnly,
	OpUserDeleteClient:     staffOnly,
	OpUserRead:             staffOnly,
	OpUserMe:               everyone,
}

// AccessPolicy answers which role may perform which operation. The whole matrix
// lives in one table so it can be read and tested in isolation.
type AccessPolicy struct {
	grants map[Operation]map[kernel.Role]Grant
}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{grants: defaultGrants}
}

// Grant looks up the table entry. Unknown roles and operations are denied.
func (p AccessPolicy) Grant(role kernel.Role, op Operation) Grant {
	return p.grants[op][role]
}

// Authorize fails with errs.ErrForbidden when the caller's role is denied the operation.
// AllowOwn passes; use AuthorizeOwned once the resource is loaded.
func (p AccessPolicy) Authorize(caller kernel.Caller, op Operation) error {
	if p.Grant(caller.Role, op) == Deny {
		return errs.NewForbiddenErrorWithReason(string(op), fmt.Sprintf("role %s is not allowed", caller.Role))
	}
	return nil
}

// AuthorizeOwned is Authorize plus the ownership check for AllowOwn grants.
func (p AccessPolicy) AuthorizeOwned(caller kernel.Caller, op Operation, isParty func(userID int64) bool) error {
	switch p.Grant(caller.Role, op) {
	case Allow:
		return nil
	case AllowOwn:
		if isParty(caller.ID) {
			return nil
		}
		return errs.NewForbiddenErrorWithReason(string(op), "caller is not a party to the resource")
	default:
		return p.Authorize(caller, op)
	}
}

// RestrictedToOwn reports whether list results must be narrowed to the caller's resources.
func (p AccessPolicy) RestrictedToOwn(caller kernel.Caller, op Operation) bool {
	return p.Grant(caller.Role, op) == AllowOwn
}

// UserCreateOperation picks the operation that guards creating a user with the target role.
func UserCreateOperation(target kernel.Role) Operation {
	if target == kernel.RoleClient {
		return OpUserCreateClient
	}
	return OpUserCreatePrivileged
}

// UserUpdateOperation picks the operation that guards editing a user who currently has the target role.
func UserUpdateOperation(target kernel.Role) Operation {
	switch target {
	case kernel.RoleClient:
		return OpUserUpdateClient
	case kernel.RoleManager:
		return OpUserUpdateManager
	default:
		return OpUserUpdateAdmin
	}
}

func UserDeleteOperation(target kernel.Role) Operation {
	switch target {
	case kernel.RoleClient:
		return OpUserDeleteClient
	case kernel.RoleManager:
		return OpUserDeleteManager
	default:
		return OpUserDeleteAdmin
	}
}
