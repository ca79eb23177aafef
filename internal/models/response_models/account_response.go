package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	AccountID string `json:"account_id"`
	ExpiresIn int64  `json:"expires_in"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"created_at"`
}
