package auth

// OAuthIdentity is what the sign-in provider tells us about the person logging in.
type OAuthIdentity struct {
	Email      string
	Name       *string
	AvatarURL  *string
	ProviderID string
}
