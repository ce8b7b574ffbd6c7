package dto

// LoginRequest is bound from the form body of POST /login/access-token
// (OAuth2 password-flow shape; username also accepts the e-mail address).
type LoginRequest struct {
	Username string `form:"username" validate:"required,min=1"`
	Password string `form:"password" validate:"required,min=1"`
}

// TokenResponse is the access-token payload returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
