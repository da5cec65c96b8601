package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Organization struct {
	bun.BaseModel `bun:"table:organizations,alias:org"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Name      string    `bun:"name,notnull,unique"`
	Kind      string    `bun:"kind,notnull,default:'school'"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type Classroom struct {
	bun.BaseModel `bun:"table:classrooms,alias:cr"`

	ID             int64     `bun:"id,pk,autoincrement"`
	OrganizationID *int64    `bun:"organization_id"`
	Name           string    `bun:"name,notnull"`
	InviteCode     string    `bun:"invite_code,notnull,unique"`
	CreatedAt      time.Time `bun:"created_at,notnull"`
	UpdatedAt      time.Time `bun:"updated_at,notnull"`
}

// Membership role constants
const (
	MembershipRoleTeacher = "teacher"
	MembershipRoleStudent = "student"
)

type ClassroomMembership struct {
	bun.BaseModel `bun:"table:classroom_memberships,alias:cm"`

	ID          int64     `bun:"id,pk,autoincrement"`
	ClassroomID int64     `bun:"classroom_id,notnull"`
	UserID      int64     `bun:"user_id,notnull"`
	Role        string    `bun:"role,notnull,default:'student'"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`

	Classroom *Classroom `bun:"rel:belongs-to,join:classroom_id=id"`
	User      *User      `bun:"rel:belongs-to,join:user_id=id"`
}
