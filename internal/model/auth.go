package model

// AccessToken is the object embedded in the jwt access token.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RefreshToken is the object embedded in the jwt refresh token.
type RefreshToken struct {
	Family  string `json:"family"`
	Counter uint64 `json:"counter"`
}

type SignupRequest struct {
	Name     string `json:"user_name"`
	Password string `json:"password"`
}

type SignupResponse struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginRequest struct {
	Name     string `json:"user_name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (r SignupResponse) AccessTokenInfo() string {
	return r.AccessToken
}

func (r SignupResponse) SessionInfo() map[string]any {
	return map[string]any{"user_id": r.UserID}
}

func (r LoginResponse) AccessTokenInfo() string {
	return r.AccessToken
}

func (r RefreshTokenResponse) AccessTokenInfo() string {
	return r.AccessToken
}
