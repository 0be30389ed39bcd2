package jwtutil

type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleAdmin
)

func RoleOf(isAdmin bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	default:
		return "guest"
	}
}
