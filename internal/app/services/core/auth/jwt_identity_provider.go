package auth

import (
	"context"
	"doctor-appointment-service/internal/app/config"
	"doctor-appointment-service/internal/app/contracts"
	"doctor-appointment-service/internal/pkg/exceptions"
	"doctor-appointment-service/internal/pkg/utils"
	"time"
)

// jwtIdentityProvider authenticates against the users collection and issues
// HS256 tokens signed with the configured secret.
type jwtIdentityProvider struct {
	UserRepository contracts.UserRepository
	secret         string
	ttl            time.Duration
	now            func() time.Time
}

func NewJWTIdentityProvider(userRepository contracts.UserRepository, internalConfig *config.InternalConfig) contracts.IdentityProvider {
	return &jwtIdentityProvider{
		UserRepository: userRepository,
		secret:         internalConfig.JWT.Secret,
		ttl:            time.Duration(internalConfig.JWT.ExpTimeInMinute) * time.Minute,
		now:            time.Now,
	}
}

func (p *jwtIdentityProvider) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := p.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.HashedPassword) {
		return "", exceptions.ErrInvalidEmailOrPassword(nil)
	}
	return user.ID.Hex(), nil
}

func (p *jwtIdentityProvider) IssueToken(ctx context.Context, principalID string) (string, error) {
	return utils.GenerateJWT(principalID, p.secret, p.now(), p.ttl)
}

// Authorize also rejects tokens whose subject no longer exists.
func (p *jwtIdentityProvider) Authorize(ctx context.Context, bearerToken string) (string, error) {
	if bearerToken == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}

	subject, err := utils.ParseJWT(bearerToken, p.secret)
	if err != nil {
		return "", err
	}

	user, err := p.UserRepository.FindByID(ctx, subject)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindValidation) {
			return "", exceptions.ErrTokenInvalidOrExpired(err)
		}
		return "", err
	}
	if user == nil {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return subject, nil
}
