package request

import "gourmet-gateway/internal/infra/gateway"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username  string  `json:"username" binding:"required"`
	Password  string  `json:"password" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *RegisterRequest) ToRegistration() gateway.Registration {
	return gateway.Registration{
		Username:  r.Username,
		Password:  r.Password,
		Email:     r.Email,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

type DemoSessionRequest struct {
	Admin bool `json:"admin"`
}
