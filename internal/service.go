package user

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-api/pkg/cerror"
	"user-api/pkg/hasher"
	"user-api/pkg/jwt_generator"
	"user-api/pkg/logger"
)

type Service interface {
	Register(ctx context.Context, payload *RegisterPayload) (*LoginResult, error)
	Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error)
	GetUserById(ctx context.Context, userId string) (*UserRow, error)
	ListUsers(ctx context.Context, page, limit int) (*UserPage, error)
	SeedDefaultUsers(ctx context.Context) error
}

const DefaultPageLimit = 10

type service struct {
	userRepository Repository
	jwtGenerator   jwt_generator.JwtGenerator
	passwordHasher hasher.Hasher
}

func NewService(
	userRepository Repository,
	jwtGenerator jwt_generator.JwtGenerator,
	passwordHasher hasher.Hasher,
) Service {
	return &service{
		userRepository: userRepository,
		jwtGenerator:   jwtGenerator,
		passwordHasher: passwordHasher,
	}
}

func (s *service) Register(ctx context.Context, payload *RegisterPayload) (*LoginResult, error) {
	return s.createUser(ctx, payload.Name, payload.Email, payload.Password, RoleUser)
}

// createUser hashes explicitly before persisting; the repository never sees a
// plaintext password. A value that already carries the bcrypt marker is
// persisted as-is instead of being hashed twice.
func (s *service) createUser(
	ctx context.Context,
	name, email, password string,
	role Role,
) (*LoginResult, error) {
	passwordHash := password
	if !s.passwordHasher.IsHashed(password) {
		var err error
		passwordHash, err = s.passwordHasher.Hash(password)
		if err != nil {
			return nil, cerror.NewError(
				fiber.StatusInternalServerError,
				"error occurred while generate hash from password",
				zap.Error(err),
			)
		}
	}

	insertedUser, err := s.userRepository.InsertUser(ctx, &UserRow{
		Id:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(insertedUser)
}

// Login walks a linear decision tree; every terminal failure is logged as a
// security event with the attempted email, never the password.
//
// A deactivated account answers distinctly from invalid credentials, which
// confirms the email exists. Unknown email and wrong password stay merged.
// The inconsistency is observed behavior, kept deliberately.
func (s *service) Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error) {
	log := logger.FromContext(ctx).With(zap.String("email", payload.Email))

	foundUser, err := s.userRepository.FindUserWithEmail(ctx, payload.Email)
	if err != nil {
		return nil, err
	}

	if foundUser == nil {
		log.Warn("login attempt with unknown email")
		return nil, cerror.ErrorInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Warn("login attempt against deactivated account")
		return nil, cerror.ErrorAccountDeactivated
	}

	if !s.passwordHasher.Verify(payload.Password, foundUser.PasswordHash) {
		log.Warn("login attempt with wrong password")
		return nil, cerror.ErrorInvalidCredentials
	}

	// Best-effort: a failed timestamp write never fails the login. Concurrent
	// logins for the same user race on this column; last writer wins.
	err = s.userRepository.UpdateLastLogin(ctx, foundUser.Id, time.Now().UTC())
	if err != nil {
		log.Warnw(
			"failed to update last login timestamp",
			zap.String("userId", foundUser.Id),
		)
	}

	return s.issueTokens(foundUser)
}

func (s *service) issueTokens(user *UserRow) (*LoginResult, error) {
	accessToken, err := s.jwtGenerator.GenerateAccessToken(user.Id, user.Email, string(user.Role))
	if err != nil {
		return nil, cerror.ErrorGenerateAccessToken.WithFields(zap.Error(err))
	}

	refreshToken, err := s.jwtGenerator.GenerateRefreshToken(user.Id)
	if err != nil {
		return nil, cerror.ErrorGenerateRefreshToken.WithFields(zap.Error(err))
	}

	return &LoginResult{
		User: UserSummary{
			Id:    user.Id,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *service) GetUserById(ctx context.Context, userId string) (*UserRow, error) {
	return s.userRepository.FindUserWithId(ctx, userId)
}

func (s *service) ListUsers(ctx context.Context, page, limit int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	users, total, err := s.userRepository.FindAllUsers(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// SeedDefaultUsers creates the development admin and demo accounts when they
// are absent, then logs the per-role counts.
func (s *service) SeedDefaultUsers(ctx context.Context) error {
	log := logger.FromContext(ctx)

	seedUsers := []struct {
		name     string
		email    string
		password string
		role     Role
	}{
		{name: "Admin User", email: "admin@example.com", password: "admin123", role: RoleAdmin},
		{name: "Demo User", email: "user@example.com", password: "password123", role: RoleUser},
	}

	for _, seedUser := range seedUsers {
		foundUser, err := s.userRepository.FindUserWithEmail(ctx, seedUser.email)
		if err != nil {
			return err
		}

		if foundUser != nil {
			log.Infow("seed user already exists", "email", seedUser.email)
			continue
		}

		_, err = s.createUser(ctx, seedUser.name, seedUser.email, seedUser.password, seedUser.role)
		if err != nil {
			return err
		}

		log.Infow("seed user created", "email", seedUser.email, "role", seedUser.role)
	}

	counts, err := s.userRepository.CountUsersByRole(ctx)
	if err != nil {
		return err
	}

	log.Infow(
		"user counts after seeding",
		"admin", counts.Admin,
		"user", counts.User,
		"total", counts.Total,
	)
	return nil
}
