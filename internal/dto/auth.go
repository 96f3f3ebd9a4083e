package dto

// ExchangeCodeRequest is the POST body for the Google code exchange.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// SessionResponse is the authenticated user as read by the UI.
type SessionResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ExchangeCodeResponse is the successful code-exchange response.
type ExchangeCodeResponse struct {
	Token string          `json:"token"`
	User  SessionResponse `json:"user"`
}
