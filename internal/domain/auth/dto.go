package auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	StaffID     string `json:"staff_id"`
	FullName    string `json:"full_name"`
	IsAdmin     bool   `json:"is_admin"`
}
