package usecase

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"lifelessons/internal/entity"
	"lifelessons/internal/repo/persistent"
	"lifelessons/pkg/config"
	"lifelessons/pkg/jwt"
	"lifelessons/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	Register(email, name, photoURL, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetByEmail(email string) (*entity.User, error)
	GetRole(email string) (entity.UserRole, error)
	ListUsers(viewer entity.ViewerContext, limit, offset int) ([]*entity.User, error)
	SetPremium(email string, viewer entity.ViewerContext, premium bool) error
	CreateCheckoutSession(viewer entity.ViewerContext) (string, error)

	// ViewerContext resolves the entitlement of the authenticated viewer from
	// the user record; entitlement is never trusted from the token alone.
	ViewerContext(email string) (entity.ViewerContext, error)
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	cfg        *config.Config
	logger     *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	cfg *config.Config,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		cfg:        cfg,
		logger:     logger,
	}
}

func (uc *userUseCase) Register(email, name, photoURL, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: invalid email", entity.ErrValidation)
	}
	if len(password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", entity.ErrValidation)
	}

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", fmt.Errorf("%w: user with this email already exists", entity.ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Name:     name,
		PhotoURL: photoURL,
		Password: string(hashedPassword),
		Role:     entity.RoleUser,
	}
	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *userUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *userUseCase) GetByEmail(email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *userUseCase) GetRole(email string) (entity.UserRole, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (uc *userUseCase) ListUsers(viewer entity.ViewerContext, limit, offset int) ([]*entity.User, error) {
	if !viewer.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list users: %v", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for _, user := range users {
		user.Password = ""
	}
	return users, nil
}

// SetPremium flips the entitlement flag. The payment processor's success
// redirect (or cancel action) lands here; a viewer may only change their own
// flag unless they are an admin.
func (uc *userUseCase) SetPremium(email string, viewer entity.ViewerContext, premium bool) error {
	if viewer.Email != email && !viewer.IsAdmin() {
		return entity.ErrForbidden
	}
	return uc.userRepo.SetPremium(email, premium)
}

// CreateCheckoutSession returns the redirect URL for the opaque payment
// processor. The processor calls back into SetPremium after payment.
func (uc *userUseCase) CreateCheckoutSession(viewer entity.ViewerContext) (string, error) {
	if viewer.Email == "" {
		return "", entity.ErrForbidden
	}

	params := url.Values{}
	params.Set("customer_email", viewer.Email)
	params.Set("success_url", uc.cfg.CheckoutSuccessURL)
	params.Set("cancel_url", uc.cfg.CheckoutCancelURL)

	return uc.cfg.CheckoutURL + "?" + params.Encode(), nil
}

func (uc *userUseCase) ViewerContext(email string) (entity.ViewerContext, error) {
	if email == "" {
		return entity.Anonymous, nil
	}

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Anonymous, nil
		}
		return entity.Anonymous, err
	}

	return entity.ViewerContext{
		Email:     user.Email,
		Role:      user.Role,
		IsPremium: user.IsPremium,
	}, nil
}
