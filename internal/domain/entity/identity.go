package entity

// ProviderType identifies how an identity signed in.
type ProviderType string

const (
	ProviderTypeEmail  ProviderType = "password"
	ProviderTypeGoogle ProviderType = "google.com"
)

// Identity is the signed-in account as reported by the identity provider.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	Provider    ProviderType
	// IDToken is the provider-issued token for the signed-in identity.
	IDToken string
	// IsNewUser is set by federated sign-in when the provider created the account.
	IsNewUser bool
}
