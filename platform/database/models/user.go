package models

import (
	"time"

	"github.com/uptrace/bun"
)

type UserRole string

const (
	UserRoleStudent      UserRole = "student"
	UserRoleProfessional UserRole = "professional"
	UserRoleTeacher      UserRole = "teacher"
	UserRoleAdmin        UserRole = "admin"
)

type ProfileType string

const (
	ProfileTypeStudent      ProfileType = "student"
	ProfileTypeProfessional ProfileType = "professional"
	ProfileTypeProfessor    ProfileType = "professor"
	ProfileTypeGuest        ProfileType = "guest"
)

// DefaultRole maps a profile type to the role assigned at registration.
// Every profile type must be handled here; an unknown value falls back to
// the least privileged role.
func (p ProfileType) DefaultRole() UserRole {
	switch p {
	case ProfileTypeStudent:
		return UserRoleStudent
	case ProfileTypeProfessional:
		return UserRoleProfessional
	case ProfileTypeProfessor:
		return UserRoleTeacher
	case ProfileTypeGuest:
		return UserRoleStudent
	}
	return UserRoleStudent
}

func (p ProfileType) Valid() bool {
	switch p {
	case ProfileTypeStudent, ProfileTypeProfessional, ProfileTypeProfessor, ProfileTypeGuest:
		return true
	}
	return false
}

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID             int64          `bun:"id,pk,autoincrement"`
	Email          string         `bun:"email,notnull,unique"`
	HashedPassword string         `bun:"hashed_password,notnull" json:"-"`
	DisplayName    string         `bun:"display_name,notnull"`
	Role           UserRole       `bun:"role,notnull,default:'student'"`
	ProfileType    ProfileType    `bun:"profile_type,notnull,default:'student'"`
	XP             int64          `bun:"xp,notnull,default:0"`
	Streak         int            `bun:"streak,notnull,default:0"`
	Energy         int            `bun:"energy,notnull,default:5"`
	EloRating      int            `bun:"elo_rating,notnull,default:1200"`
	AvatarURL      string         `bun:"avatar_url"`
	Preferences    map[string]any `bun:"preferences,type:jsonb"`
	OrganizationID *int64         `bun:"organization_id"`
	CreatedAt      time.Time      `bun:"created_at,notnull"`
	UpdatedAt      time.Time      `bun:"updated_at,notnull"`
}

// IsStaff reports whether the user may manage content and webhooks.
func (u *User) IsStaff() bool {
	return u.Role == UserRoleTeacher || u.Role == UserRoleAdmin
}
