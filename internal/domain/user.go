package domain

import "time"

// Role of a user in the college
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleProfessor
}

// User is a student or a professor.
// WorkingHours and IsAvailableForAppointments are meaningful only for professors.
type User struct {
	ID                         int64
	Name                       string
	Email                      string
	Role                       Role
	Department                 string
	WorkingHours               *TimeSlot // nil means DefaultWorkingHours
	IsAvailableForAppointments bool
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// IsProfessor returns true if the user has the professor role
func (u *User) IsProfessor() bool {
	return u.Role == RoleProfessor
}

// EffectiveWorkingHours returns the configured working hours or the default when unset
func (u *User) EffectiveWorkingHours() TimeSlot {
	if u.WorkingHours == nil {
		return DefaultWorkingHours
	}
	return *u.WorkingHours
}

// Actor is the caller of an operation as resolved from its bearer credential
type Actor struct {
	UserID int64
	Role   Role
}

// IsProfessor returns true if the actor acts as a professor
func (a Actor) IsProfessor() bool {
	return a.Role == RoleProfessor
}
