package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mixparty/backend/internal/client"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"github.com/mixparty/backend/internal/repository"
)

type AuthService interface {
	ValidateToken(ctx context.Context, token string) (model.User, error)
	ResolveGuest(token string) (dto.Voter, error)
}

type authService struct {
	userRepository          repository.UserRepository
	anonymousUserRepository repository.AnonymousUserRepository
	authClient              client.AuthClient
	tokenExpireVerifier     client.TokenExpireVerifier
}

func newAuthService(
	userRepository repository.UserRepository,
	anonymousUserRepository repository.AnonymousUserRepository,
	authClient client.AuthClient,
	verifier client.TokenExpireVerifier,
) AuthService {
	return &authService{
		userRepository:          userRepository,
		anonymousUserRepository: anonymousUserRepository,
		authClient:              authClient,
		tokenExpireVerifier:     verifier,
	}
}

// ValidateToken verifies a firebase ID token and returns the matching local
// account, creating it on first sight and keeping the email current.
func (a *authService) ValidateToken(ctx context.Context, token string) (model.User, error) {
	response, err := a.authClient.VerifyIDToken(ctx, token)
	if err != nil {
		if a.tokenExpireVerifier(err) {
			return model.User{}, fmt.Errorf("%w: %v", dto.ErrNotAuthorized, err)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	emailClaim, ok := response.Claims["email"]
	if !ok {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, "email claim not found")
	}
	userEmail, ok := emailClaim.(string)
	if !ok {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, "email claim is not a string")
	}

	user, err := a.userRepository.GetByID(response.UID)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			newUser, err := a.userRepository.Create(model.User{
				ID:    response.UID,
				Email: userEmail,
			})
			if err != nil {
				return model.User{}, err
			}
			return newUser, nil
		}
		return model.User{}, err
	}

	if user.Email != userEmail {
		user.Email = userEmail

		_, err = a.userRepository.Save(user)
		if err != nil {
			return model.User{}, err
		}
	}

	return user, nil
}

// ResolveGuest maps an anonymous bearer token to a guest voter identity.
func (a *authService) ResolveGuest(token string) (dto.Voter, error) {
	guest, err := a.anonymousUserRepository.GetByToken(token)
	if err != nil {
		return dto.Voter{}, err
	}

	return dto.Voter{
		ID:          guest.ID,
		Kind:        dto.VoterGuest,
		DisplayName: guest.DisplayName,
	}, nil
}
