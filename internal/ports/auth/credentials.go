package auth

import "context"

// CredentialProvider lee el token y el blob de sesión del almacenamiento de credenciales.
// Un valor ausente es "" sin error; el llamador decide si es fatal.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
	Session(ctx context.Context) (string, error)
}

// CurrentClaims resuelve los claims a partir de la sesión guardada.
func CurrentClaims(ctx context.Context, p CredentialProvider) (Claims, error) {
	if p == nil {
		return Claims{}, ErrNoSession
	}
	blob, err := p.Session(ctx)
	if err != nil {
		return Claims{}, err
	}
	return ParseSession(blob)
}
