package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain/entity"
	repo "storefront/internal/domain/repository"
	"storefront/pkg/helpers"
	"storefront/pkg/mailer"
)

// VerificationWindow is how long a freshly issued verification token
// stays valid. Comparisons are strict: a token presented at exactly the
// expiry instant is already dead.
const VerificationWindow = time.Minute

// UserService owns the account lifecycle: registration, time-boxed email
// verification, credential checks, and profile updates.
type UserService struct {
	Repo   repo.UserRepository
	Hasher Hasher
	Pub    Publisher
	Logger *logrus.Logger

	// now is the clock used for token expiry checks and timestamps.
	// Tests pin it to probe the expiry boundary exactly.
	now func() time.Time
}

func NewUserService(r repo.UserRepository, hasher Hasher, pub Publisher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Hasher: hasher, Pub: pub, Logger: logger, now: time.Now}
}

func (s *UserService) nowUTC() time.Time {
	if s.now != nil {
		return s.now().UTC()
	}
	return time.Now().UTC()
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates an unverified account and enqueues the verification
// email. The publish step is best-effort: a queue failure is logged and
// never fails the registration itself.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	exists, err := s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	token := helpers.NewVerificationToken()
	now := s.nowUTC()
	expiry := now.Add(VerificationWindow)

	u := &entity.User{
		Email:              in.Email,
		Password:           hash,
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		AccountCreated:     now,
		AccountUpdated:     now,
		Verified:           false,
		VerificationToken:  &token,
		VerificationExpiry: &expiry,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		// Losing the uniqueness race at commit time is still a conflict.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if s.Pub != nil {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplateVerifyEmail,
			Data: map[string]any{
				"email":      u.Email,
				"token":      token,
				"first_name": u.FirstName,
			},
		}
		if pErr := s.Pub.PublishJSON(ctx, job); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("email", u.Email).Error("failed to publish verification message")
		}
	}

	if s.Logger != nil {
		s.Logger.WithField("email", u.Email).Info("created new user (unverified)")
	}
	return u, nil
}

// VerifyEmail consumes a verification token. It reports success only when
// the token matches exactly and the current UTC time is strictly before
// the stored expiry; nothing is mutated otherwise. A consumed token can
// never succeed again because success clears both token and expiry.
func (s *UserService) VerifyEmail(ctx context.Context, email, token string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	now := s.nowUTC()
	if u.VerificationToken == nil || u.VerificationExpiry == nil {
		return false, nil
	}
	if token != *u.VerificationToken || !now.Before(*u.VerificationExpiry) {
		if s.Logger != nil {
			s.Logger.WithField("email", email).Warn("email verification failed: token expired or invalid")
		}
		return false, nil
	}

	u.Verified = true
	u.VerificationToken = nil
	u.VerificationExpiry = nil
	u.AccountUpdated = now
	if err := s.Repo.Update(ctx, u); err != nil {
		return false, err
	}
	if s.Logger != nil {
		s.Logger.WithField("email", email).Info("email verification successful")
	}
	return true, nil
}

// Authenticate validates email/password and returns the account. It is
// the basis for every authorization decision downstream.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.Hasher.Verify(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Password  string
}

// UpdateProfile overwrites first/last name and, when a non-blank password
// is supplied, re-hashes it. The email itself is never mutable here.
func (s *UserService) UpdateProfile(ctx context.Context, email string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	u.FirstName = in.FirstName
	u.LastName = in.LastName
	if strings.TrimSpace(in.Password) != "" {
		hash, hErr := s.Hasher.Hash(in.Password)
		if hErr != nil {
			return nil, hErr
		}
		u.Password = hash
	}
	u.AccountUpdated = s.nowUTC()

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
