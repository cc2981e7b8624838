package user

// Role labels what a user may do in the scoring UI.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleScorer Role = "SCORER"
	RoleViewer Role = "VIEWER"
)

// User is an account of the scoring UI. Password is compared verbatim at login.
type User struct {
	ID                string
	Username          string
	Password          string
	Email             string
	Role              Role
	ProfilePictureURL string
}
