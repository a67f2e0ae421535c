package response_models

type AccountLoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt string          `json:"expiresAt"`
	User      AccountResponse `json:"user"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}
