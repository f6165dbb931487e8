package models

type UserId string

type UserRole string

const (
	RoleClient      UserRole = "client"
	RoleLawyer      UserRole = "lawyer"
	RoleSystem      UserRole = "system"
	RoleUnknownUser UserRole = "unknown"
)

func UserRoleFrom(s string) UserRole {
	switch s {
	case "client":
		return RoleClient
	case "lawyer":
		return RoleLawyer
	case "system":
		return RoleSystem
	default:
		return RoleUnknownUser
	}
}

// User is the profile stub attached to cases, documents and timeline events.
type User struct {
	Id        UserId
	FullName  string
	Email     string
	Role      UserRole
	AvatarUrl string
}

type Credentials struct {
	UserId UserId
	Role   UserRole
}
