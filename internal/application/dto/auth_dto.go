package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"usuario"`
	Password string `json:"senha"`
}

// LoginResponse token de acesso emitido no login.
type LoginResponse struct {
	Token string `json:"token"`
}
