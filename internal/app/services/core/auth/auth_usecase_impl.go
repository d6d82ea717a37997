package auth

import (
	"context"
	"doctor-appointment-service/internal/app/contracts"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/constvars"
	"doctor-appointment-service/internal/pkg/dto/requests"
	"doctor-appointment-service/internal/pkg/dto/responses"
	"doctor-appointment-service/internal/pkg/exceptions"
	"doctor-appointment-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository   contracts.UserRepository
	IdentityProvider contracts.IdentityProvider
	Log              *zap.Logger
	now              func() time.Time
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	identityProvider contracts.IdentityProvider,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:   userRepository,
		IdentityProvider: identityProvider,
		Log:              logger,
		now:              time.Now,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Signup error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:          request.Email,
		HashedPassword: hashedPassword,
	}
	user.SetCreatedAtUpdatedAt(uc.now())

	// the unique email index still rejects a concurrent signup that slipped past FindByEmail
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Signup error calling UserRepository.CreateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalIDKey, userID),
	)
	return &responses.Signup{UserID: userID}, nil
}

func (uc *authUsecase) Signin(ctx context.Context, request *requests.Signin) (*responses.Signin, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Signin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	principalID, err := uc.IdentityProvider.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	accessToken, err := uc.IdentityProvider.IssueToken(ctx, principalID)
	if err != nil {
		uc.Log.Error("authUsecase.Signin error calling IdentityProvider.IssueToken",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Signin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalIDKey, principalID),
	)
	return &responses.Signin{
		AccessToken: accessToken,
		TokenType:   constvars.AuthTokenType,
	}, nil
}
