package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"

	"github.com/asaparov/tendercrm/internal/adapter/config"
	"github.com/asaparov/tendercrm/internal/core/domain"
	"github.com/asaparov/tendercrm/internal/core/port"
)

const tokenLifetime = 24 * time.Hour

type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
}

// New builds the token service from the symmetric key shared with the
// external auth service. An empty key falls back to a fresh random key, so
// tokens then only verify within this process — good enough for local runs
// and tests, never for production.
func New(conf *config.Auth) (port.TokenService, error) {
	var key paseto.V4SymmetricKey
	if conf == nil || conf.TokenKey == "" {
		key = paseto.NewV4SymmetricKey()
	} else {
		k, err := paseto.V4SymmetricKeyFromHex(conf.TokenKey)
		if err != nil {
			return nil, domain.ErrTokenCreation
		}
		key = k
	}

	parser := paseto.NewParser()

	return &PasetoToken{
		parser: &parser,
		key:    &key,
	}, nil
}

func (p *PasetoToken) CreateToken(userID uint64) (string, error) {
	token := paseto.NewToken()
	token.SetExpiration(time.Now().Add(tokenLifetime))

	payload := port.TokenPayload{UserID: userID}
	if err := token.Set("payload", payload); err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	if err := parsedToken.Get("payload", &payload); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
