package port

type TokenPayload struct {
	UserID uint64
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock

// TokenService verifies bearer tokens minted by the external auth service.
// User and session management stay outside this repository.
type TokenService interface {
	CreateToken(userID uint64) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
