package contracts

import (
	"context"
	"doctor-appointment-service/internal/pkg/dto/requests"
	"doctor-appointment-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error)
	Signin(ctx context.Context, request *requests.Signin) (*responses.Signin, error)
}

// IdentityProvider turns credentials into principal ids and back.
type IdentityProvider interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	IssueToken(ctx context.Context, principalID string) (string, error)
	Authorize(ctx context.Context, bearerToken string) (string, error)
}
