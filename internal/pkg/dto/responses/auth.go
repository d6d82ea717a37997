package responses

type Signup struct {
	UserID string `json:"user_id"`
}

type Signin struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
