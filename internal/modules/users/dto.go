package users

// CredentialsRequest is the body of both POST and PUT /api/users.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=256"`
	Password string `json:"password" validate:"required,min=8"`
}
