package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/application"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type stubUserRepo struct {
	user   *entity.User
	getErr error
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) Update(_ context.Context, u *entity.User) error {
	s.user = u
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return s.user != nil && s.user.Email == email, nil
}

type noopHasher struct{}

func (noopHasher) Hash(plain string) (string, error) { return plain, nil }
func (noopHasher) Verify(hash, plain string) bool    { return hash == plain }

func verificationEngine(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	users := application.NewUserService(repo, noopHasher{}, nil, nil)
	h := NewVerificationHandler(users, logrus.New())
	r := gin.New()
	r.GET("/validateEmail", h.Validate)
	return r
}

func pendingUser(token string) *entity.User {
	expiry := time.Now().UTC().Add(time.Minute)
	return &entity.User{
		ID:                 1,
		Email:              "a@b.com",
		VerificationToken:  &token,
		VerificationExpiry: &expiry,
	}
}

func TestValidateEmailMissingParams(t *testing.T) {
	r := verificationEngine(&stubUserRepo{})

	for _, target := range []string{"/validateEmail", "/validateEmail?email=a@b.com", "/validateEmail?token=x"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestValidateEmailSuccess(t *testing.T) {
	repo := &stubUserRepo{user: pendingUser("tok-123")}
	r := verificationEngine(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/validateEmail?email=a@b.com&token=tok-123", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.user.Verified)
	assert.Nil(t, repo.user.VerificationToken)
}

func TestValidateEmailStoreFailureIsInternal(t *testing.T) {
	repo := &stubUserRepo{user: pendingUser("tok-123"), getErr: errors.New("connection refused")}
	r := verificationEngine(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/validateEmail?email=a@b.com&token=tok-123", nil))

	// An unreachable store is a server fault, not an invalid link.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, repo.user.Verified)
}

func TestValidateEmailWrongToken(t *testing.T) {
	repo := &stubUserRepo{user: pendingUser("tok-123")}
	r := verificationEngine(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/validateEmail?email=a@b.com&token=nope", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, repo.user.Verified)
}
