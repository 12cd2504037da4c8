package session

import "strings"

type Role string

const (
	RoleGuest         Role = "guest"
	RoleStandardUser  Role = "user"
	RoleAdministrator Role = "admin"
)

// Role hints as reported by the identity service.
const (
	roleHintAdmin = "ROLE_ADMIN"
	roleHintUser  = "ROLE_USER"
)

const adminMarker = "admin"

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdministrator() bool {
	return r == RoleAdministrator
}

// ResolveRole derives the caller's role from locally held session data; no
// server round-trip. A recognized role hint from the identity service wins.
// Without one, fall back to the historical convention of an "admin" marker
// in the username (case-insensitive), kept only for sessions that carry no
// explicit role.
func ResolveRole(s *Session) Role {
	if s == nil {
		return RoleGuest
	}

	switch s.RoleHint {
	case roleHintAdmin:
		return RoleAdministrator
	case roleHintUser:
		return RoleStandardUser
	}

	if strings.Contains(strings.ToLower(s.Username), adminMarker) {
		return RoleAdministrator
	}
	return RoleStandardUser
}
