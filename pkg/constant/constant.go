package constant

const (
	IdentityTypeEmail = "email"
	IdentityTypePhone = "phone"

	PurposeLogin          = "login"
	PurposeVerifyIdentity = "verify_identity"

	DonationStatusInitialized = "initialized"
	DonationStatusSuccess     = "success"
	DonationStatusFailed      = "failed"

	SourceTypeDonation = "donation"

	WebhookEventChargeSuccess = "charge.success"
	WebhookEventChargeFailed  = "charge.failed"
	PaystackSignatureHeader   = "x-paystack-signature"
)
