package dto

type RefreshInput struct {
	RefreshToken string `json:"refresh"`
	IPAddress    string `json:"-"`
	UserAgent    string `json:"-"`
}

type LogoutInput struct {
	RefreshToken string `json:"refresh"`
	AllDevices   bool   `json:"all_devices"`
}

// TokenResponse carries a freshly minted token pair. RefreshToken is
// empty when rotation is disabled.
type TokenResponse struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh,omitempty"`
}

type AuthResult struct {
	AccessToken  string      `json:"access"`
	RefreshToken string      `json:"refresh"`
	User         *UserOutput `json:"user"`
}
