package user

// SocialProvider identifies a federated login provider linked to a user.
type SocialProvider string

const (
	ProviderFacebook SocialProvider = "facebook"
	ProviderGoogle   SocialProvider = "google"
	ProviderFirebase SocialProvider = "firebase"
	ProviderApple    SocialProvider = "apple"
)

// Column returns the users column holding the provider's subject id.
func (p SocialProvider) Column() (string, bool) {
	switch p {
	case ProviderFacebook:
		return "facebook_id", true
	case ProviderGoogle:
		return "google_id", true
	case ProviderFirebase:
		return "firebase_uid", true
	case ProviderApple:
		return "apple_id", true
	}
	return "", false
}
