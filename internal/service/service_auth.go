package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-buddy/internal/config"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/store"
	"github.com/MKhiriev/go-study-buddy/internal/utils"
	"github.com/MKhiriev/go-study-buddy/internal/validators"
	"github.com/MKhiriev/go-study-buddy/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes and identities travel as HS256 JWTs.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new account and issues its first token.
//
// Returns:
//   - ErrInvalidDataProvided wrapping the validator error for a bad payload.
//   - store.ErrEmailAlreadyExists (wrapped) when the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid registration data")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, err
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		CreatedAt:    a.now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(registeredUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")
	return registeredUser, token, nil
}

// Login authenticates an existing user and records the login time.
//
// An unknown email and a wrong password both return an error wrapping
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", req.Email).Msg("login for unknown email")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.CheckPassword(foundUser.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Str("user_id", foundUser.ID).Msg("stored password hash is unusable")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if !ok {
		log.Debug().Str("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	loginAt := a.now().UTC()
	if err = a.userRepository.UpdateLastLogin(ctx, foundUser.ID, loginAt); err != nil {
		log.Warn().Err(err).Str("user_id", foundUser.ID).Msg("error recording last login")
	} else {
		foundUser.LastLogin = &loginAt
	}

	token, err := a.createToken(foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// Verify parses tokenString and loads the user it names. A valid token for
// a user that no longer exists is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) Verify(ctx context.Context, tokenString string) (models.User, error) {
	if err := a.validator.Validate(ctx, models.VerifyRequest{Token: tokenString}); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
