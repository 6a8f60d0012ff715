package dto

type RegisterInput struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name"`
}

type RegisterResult struct {
	IdentityID   string `json:"identity_id"`
	UserID       string `json:"user_id"`
	IdentityType string `json:"identity_type"`
}
