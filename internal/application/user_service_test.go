package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/mailer"
)

func newUserService(r *fakeUserRepo, pub *fakePublisher) *UserService {
	return NewUserService(r, fakeHasher{}, pub, nil)
}

func TestRegisterCreatesUnverifiedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	pub := &fakePublisher{}
	svc := newUserService(repo, pub)

	before := time.Now().UTC()
	u, err := svc.Register(context.Background(), RegisterInput{
		Email:     "jane@example.com",
		Password:  "secretpass",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)

	assert.False(t, u.Verified)
	assert.Equal(t, "hashed:secretpass", u.Password)
	require.NotNil(t, u.VerificationToken)
	require.NotNil(t, u.VerificationExpiry)
	assert.WithinDuration(t, before.Add(VerificationWindow), *u.VerificationExpiry, 2*time.Second)

	require.Len(t, pub.published, 1)
	job, ok := pub.published[0].(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, mailer.TemplateVerifyEmail, job.Template)
	assert.Equal(t, "jane@example.com", job.To)
	assert.Equal(t, *u.VerificationToken, job.Data["token"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakePublisher{})

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "secretpass"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "otherpass1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterPublishFailureDoesNotFailRegistration(t *testing.T) {
	repo := newFakeUserRepo()
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := newUserService(repo, pub)

	u, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "secretpass"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
}

func TestVerifyEmailSuccessClearsToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakePublisher{})

	u, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "secretpass"})
	require.NoError(t, err)
	token := *u.VerificationToken

	ok, err := svc.VerifyEmail(context.Background(), "a@b.com", token)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.True(t, stored.Verified)
	// verified implies no outstanding token or expiry
	assert.Nil(t, stored.VerificationToken)
	assert.Nil(t, stored.VerificationExpiry)
}

func TestVerifyEmailWrongToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakePublisher{})

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "secretpass"})
	require.NoError(t, err)

	ok, err := svc.VerifyEmail(context.Background(), "a@b.com", "not-the-token")
	require.NoError(t, err)
	assert.False(t, ok)

	stored, _ := repo.GetByEmail(context.Background(), "a@b.com")
	assert.False(t, stored.Verified)
	assert.NotNil(t, stored.VerificationToken)
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakePublisher{})

	u, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "secretpass"})
	require.NoError(t, err)
	token := *u.VerificationToken

	// Push expiry into the past; expiry exactly now must also fail since
	// success requires now strictly before expiry.
	stored := repo.users[u.ID]
	past := time.Now().UTC().Add(-time.Second)
	stored.VerificationExpiry = &past

	ok, err := svc.VerifyEmail(context.Background(), "a@b.com", token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyEmailFailsAtExactExpiryInstant(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakePublisher{})

	u, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "secretpass"})
	require.NoError(t, err)
	token := *u.VerificationToken
	expiry := *u.VerificationExpiry

	// Success requires now strictly before expiry, so the exact instant
	// is already too late.
	svc.now = func() time.Time { return expiry }
	ok, err := svc.VerifyEmail(context.Background(), "a@b.com", token)
	require.NoError(t, err)
	assert.False(t, ok)

	svc.now = func() time.Time { return expiry.Add(-time.Millisecond) }
	ok, err = svc.VerifyEmail(context.Background(), "a@b.com", token)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyEmailTokenIsSingleUse(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakePublisher{})

	u, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "secretpass"})
	require.NoError(t, err)
	token := *u.VerificationToken

	ok, err := svc.VerifyEmail(context.Background(), "a@b.com", token)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.VerifyEmail(context.Background(), "a@b.com", token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyEmailUnknownUser(t *testing.T) {
	svc := newUserService(newFakeUserRepo(), &fakePublisher{})

	ok, err := svc.VerifyEmail(context.Background(), "ghost@example.com", "whatever")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakePublisher{})

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "secretpass"})
	require.NoError(t, err)

	u, err := svc.Authenticate(context.Background(), "a@b.com", "secretpass")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)

	_, err = svc.Authenticate(context.Background(), "a@b.com", "wrongpass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "ghost@example.com", "secretpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfileBlankPasswordKeepsHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakePublisher{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@b.com", Password: "secretpass", FirstName: "Old", LastName: "Name",
	})
	require.NoError(t, err)

	u, err := svc.UpdateProfile(context.Background(), "a@b.com", UpdateProfileInput{
		FirstName: "New", LastName: "Name", Password: "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", u.FirstName)
	assert.Equal(t, "hashed:secretpass", u.Password)

	u, err = svc.UpdateProfile(context.Background(), "a@b.com", UpdateProfileInput{
		FirstName: "New", LastName: "Name", Password: "freshpass1",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed:freshpass1", u.Password)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := newUserService(newFakeUserRepo(), &fakePublisher{})

	_, err := svc.UpdateProfile(context.Background(), "ghost@example.com", UpdateProfileInput{FirstName: "X"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserLookupFailurePropagates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakePublisher{})

	u, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "secretpass"})
	require.NoError(t, err)

	// A store outage must surface as an error, never be mistaken for a
	// missing account or a bad token.
	boom := errors.New("connection refused")
	repo.getErr = boom

	ok, err := svc.VerifyEmail(context.Background(), "a@b.com", *u.VerificationToken)
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetByID(context.Background(), u.ID)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetByEmail(context.Background(), "a@b.com")
	assert.ErrorIs(t, err, boom)

	_, err = svc.Authenticate(context.Background(), "a@b.com", "secretpass")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.UpdateProfile(context.Background(), "a@b.com", UpdateProfileInput{FirstName: "X", LastName: "Y"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestRequireVerified(t *testing.T) {
	assert.ErrorIs(t, RequireVerified(nil), ErrInvalidCredentials)

	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakePublisher{})
	u, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "secretpass"})
	require.NoError(t, err)

	assert.ErrorIs(t, RequireVerified(u), ErrEmailNotVerified)

	u.Verified = true
	assert.NoError(t, RequireVerified(u))
}
