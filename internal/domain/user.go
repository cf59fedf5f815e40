package domain

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	ID           int32    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	CreatedOn    string   `json:"created_on"`
	UpdatedOn    string   `json:"updated_on"`
}

// Actor is the authenticated caller of an operation, threaded explicitly
// through every service call rather than read from ambient request state.
type Actor struct {
	UserID int32
	Role   UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == UserRoleAdmin
}
