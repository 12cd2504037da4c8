package session

// DemoToken is the sentinel bearer value handed out by the offline demo
// login. It is never sent upstream: a real backend would reject it on
// otherwise-public endpoints.
const DemoToken = "BYPASS_TOKEN"

// Session is the caller's identity for the duration of a browser session.
// It is cookie-held and passed explicitly into every gateway call; nothing
// in this layer caches it process-wide.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"-"`
	// RoleHint is the role string the identity service returned at login
	// (e.g. "ROLE_ADMIN"). Empty for sessions established before the
	// identity service reported roles, and for demo sessions.
	RoleHint string `json:"-"`
}

// IsDemo reports whether the session was created by the offline demo login.
func (s *Session) IsDemo() bool {
	return s != nil && s.Token == DemoToken
}
