package response

import "gourmet-gateway/internal/domain/session"

type SessionResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Demo     bool   `json:"demo"`
}

func NewSessionResponse(sess *session.Session) SessionResponse {
	return SessionResponse{
		Username: sess.Username,
		Role:     session.ResolveRole(sess).String(),
		Demo:     sess.IsDemo(),
	}
}
