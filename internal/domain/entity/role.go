package entity

import (
	"time"

	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// Role represents an authorization role.
// Many-to-many with User via user_role; neither side owns the other.
type Role struct {
	id        vo.RoleID
	name      vo.RoleName
	createdAt time.Time
	updatedAt time.Time
}

func NewRole(id vo.RoleID, name vo.RoleName, now time.Time) *Role {
	return &Role{id: id, name: name, createdAt: now, updatedAt: now}
}

// RehydrateRole rebuilds a role loaded from storage.
func RehydrateRole(id vo.RoleID, name vo.RoleName, createdAt, updatedAt time.Time) *Role {
	return &Role{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (r *Role) ID() vo.RoleID        { return r.id }
func (r *Role) Name() vo.RoleName    { return r.name }
func (r *Role) CreatedAt() time.Time { return r.createdAt }
func (r *Role) UpdatedAt() time.Time { return r.updatedAt }

func (r *Role) Rename(name vo.RoleName, now time.Time) {
	r.name = name
	r.updatedAt = now
}
