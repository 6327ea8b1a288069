package api

import "context"

// CredentialSource yields the access credential for the current request.
// It is consulted when a request is sent, never earlier, so a login or
// logout earlier in the same request is always reflected.
type CredentialSource interface {
	AccessCredential() string
}

// StaticCredential is a fixed credential, mostly useful in tests and tools.
type StaticCredential string

func (s StaticCredential) AccessCredential() string { return string(s) }

type credentialKey struct{}

// WithCredentials returns a context whose backend calls carry src's credential.
func WithCredentials(ctx context.Context, src CredentialSource) context.Context {
	return context.WithValue(ctx, credentialKey{}, src)
}

func credentialFrom(ctx context.Context) string {
	if src, ok := ctx.Value(credentialKey{}).(CredentialSource); ok && src != nil {
		return src.AccessCredential()
	}
	return ""
}
