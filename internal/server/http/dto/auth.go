package dto

// AuthRequest describes registration/login payload.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse is a human-readable outcome report.
type MessageResponse struct {
	Message string `json:"message"`
}
