package constants

import "fmt"

// Role names carried in the JWT role claim.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStaff   = "staff"
)

// Role error message template
const ErrRoleCannotAccess = "Only %s may access this feature."

func RoleError(role string) string {
	return fmt.Sprintf(ErrRoleCannotAccess, role)
}
