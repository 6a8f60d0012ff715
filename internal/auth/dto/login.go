package dto

type LoginInput struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type LoginResult struct {
	IdentityID   string `json:"identity_id"`
	IdentityType string `json:"identity_type"`
}

type VerifyOTPInput struct {
	IdentityID string `json:"identity_id"`
	OTP        string `json:"otp"`
	IPAddress  string `json:"-"`
	UserAgent  string `json:"-"`
}

type ResendOTPInput struct {
	IdentityID string `json:"identity_id"`
}
