package requests

type Signup struct {
	Email    string `json:"email" validate:"required,email_address"`
	Password string `json:"password" validate:"required,min=8"`
}

type Signin struct {
	Email    string `json:"email" validate:"required,email_address"`
	Password string `json:"password" validate:"required"`
}
