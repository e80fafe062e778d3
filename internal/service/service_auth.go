// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-shell/internal/config"
	"github.com/MKhiriev/go-auth-shell/internal/crypto"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/store"
	"github.com/MKhiriev/go-auth-shell/internal/utils"
	"github.com/MKhiriev/go-auth-shell/internal/validators"
	"github.com/MKhiriev/go-auth-shell/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, password resets
// and JWT issuing on top of a UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes and checks passwords.
	hasher crypto.PasswordHasher

	// validator checks request models against their struct tags.
	validator validators.Validator

	// uniquifier generates fs_uniquifier values for new users and on
	// password change.
	uniquifier UniquifierGenerator

	// tokenSignKey is the HMAC secret used to sign JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	uniquifier UniquifierGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		uniquifier:     uniquifier,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new active user holding the default role.
//
// Returns the persisted user or:
//   - validators.FieldErrors if the request breaks a field rule.
//   - ErrInvalidDataProvided if the password cannot be hashed.
//   - a wrapped store.ErrUserAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid sign up data provided")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := req.User()
	user.PasswordHash = hash
	user.FsUniquifier = a.uniquifier.Generate()

	registeredUser, err := a.userRepository.CreateUser(ctx, user, models.DefaultRoleName)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// SignIn authenticates an existing user.
//
// Returns the authenticated user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - a wrapped store.ErrUserNotFound if no user has that email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) SignIn(ctx context.Context, credential models.Credential) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credential); err != nil {
		log.Err(err).Msg("invalid credential provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credential.Email)
	if err != nil {
		log.Err(err).Str("email", credential.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.checkPassword(user.PasswordHash, credential.Password, ErrWrongPassword); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("password check failed")
		return models.User{}, err
	}

	if len(user.Roles) == 0 {
		role, err := a.userRepository.AttachRole(ctx, user.UserID, models.DefaultRoleName)
		if err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("granting default role failed")
			return models.User{}, fmt.Errorf("granting default role failed: %w", err)
		}
		user.Roles = append(user.Roles, role.Name)
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	return user, nil
}

// ResetPassword replaces the password of the user identified by req.Email.
// The fs_uniquifier is rotated, so tokens issued before the reset no longer
// match the user.
//
// Returns ErrInvalidDataProvided, a wrapped store.ErrUserNotFound or
// ErrOldPasswordIncorrect on failure.
func (a *authService) ResetPassword(ctx context.Context, req models.PasswordResetRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid password reset data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.checkPassword(user.PasswordHash, req.OldPassword, ErrOldPasswordIncorrect); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("old password check failed")
		return err
	}

	hash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, user.UserID, hash, a.uniquifier.Generate()); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("id", user.UserID).Msg("password updated")
	return nil
}

// CreateToken issues a signed JWT for the given user. The token's "jti"
// claim is the user's fs_uniquifier.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.FsUniquifier, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate validates tokenString and loads the user named by its subject.
// The user must still be active and its fs_uniquifier must equal the token's
// "jti" claim.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Int64("id", token.UserID).Msg("token subject does not exist")
			return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		log.Err(err).Int64("id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !user.Active || user.FsUniquifier != token.RegisteredClaims.ID {
		log.Debug().Int64("id", user.UserID).Bool("active", user.Active).Msg("token no longer matches user")
		return models.User{}, ErrUnauthorized
	}

	return user, nil
}

// checkPassword maps a mismatch to mismatchErr.
func (a *authService) checkPassword(hash, password string, mismatchErr error) error {
	err := a.hasher.Compare(hash, password)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, crypto.ErrPasswordMismatch):
		return mismatchErr
	default:
		return fmt.Errorf("password check failed: %w", err)
	}
}
