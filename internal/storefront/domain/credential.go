package domain

// Credential is a presented token after classification. It is one of
// CredentialLocal or CredentialFederated; nothing else implements it.
type Credential interface {
	Raw() string
	credential()
}

// CredentialLocal is a bearer token minted by this service.
type CredentialLocal struct{ Token string }

// CredentialFederated is an ID token from the federated provider.
type CredentialFederated struct{ Token string }

func (c CredentialLocal) Raw() string     { return c.Token }
func (c CredentialFederated) Raw() string { return c.Token }

func (CredentialLocal) credential()     {}
func (CredentialFederated) credential() {}
