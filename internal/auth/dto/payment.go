package dto

type DonateInput struct {
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Amount int    `json:"amount"`
}

type DonateResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// WebhookEvent is the provider callback envelope. Only the fields the
// settlement path reads are decoded.
type WebhookEvent struct {
	Event string           `json:"event"`
	Data  WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	Reference string `json:"reference"`
	Amount    int    `json:"amount"`
	Status    string `json:"status"`
}
