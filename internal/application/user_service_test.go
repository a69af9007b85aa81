package application

import (
	"context"
	"crypto"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/gaienhofen/user-onboarding/internal/domain/entity"
	"github.com/gaienhofen/user-onboarding/internal/domain/event"
	"github.com/gaienhofen/user-onboarding/internal/infrastructure/memory"
	"github.com/gaienhofen/user-onboarding/pkg/helpers"
)

const passwordDigest = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

type spyRepo struct {
	inner   *memory.UserRepository
	saved   []entity.User
	saveErr error
	findErr error
}

func newSpyRepo() *spyRepo { return &spyRepo{inner: memory.NewUserRepository()} }

func (r *spyRepo) Save(ctx context.Context, u *entity.User) error {
	r.saved = append(r.saved, *u)
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.inner.Save(ctx, u)
}

func (r *spyRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.inner.FindByEmail(ctx, email)
}

type stubPublisher struct {
	events []any
	err    error
}

func (p *stubPublisher) PublishJSON(_ context.Context, body any) error {
	p.events = append(p.events, body)
	return p.err
}

type stubIndexer struct {
	indexed []string
	err     error
}

func (x *stubIndexer) IndexUser(_ context.Context, u *entity.User) error {
	x.indexed = append(x.indexed, u.ID)
	return x.err
}

func candidate() *entity.User {
	return &entity.User{FirstName: " Ada ", Name: "Lovelace", Email: "Ada.Lovelace@Example.com", Password: "password"}
}

func TestService_ValidateEmail(t *testing.T) {
	svc := NewService(newSpyRepo(), nil, helpers.DigestFixed, nil, nil)

	for _, e := range []string{"user@example.com", "Mixed.Case@Example.ORG", "x+y@sub.example.co.uk"} {
		got, err := svc.ValidateEmail(e)
		require.NoError(t, err)
		require.Equal(t, e, got)
	}
	for _, e := range []string{"not-an-email", "", "a@b"} {
		_, err := svc.ValidateEmail(e)
		require.ErrorIs(t, err, ErrInvalidArgument, e)
		require.Contains(t, err.Error(), "email is invalid")
	}
}

func TestService_HashPassword(t *testing.T) {
	svc := NewService(newSpyRepo(), nil, "", nil, nil)
	require.Equal(t, helpers.DigestFixed, svc.Encoding)

	a, err := svc.HashPassword("password")
	require.NoError(t, err)
	b, err := svc.HashPassword("password")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, passwordDigest, a)

	empty, err := svc.HashPassword("")
	require.NoError(t, err)
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", empty)
}

func TestService_HashPasswordUnavailable(t *testing.T) {
	svc := NewService(newSpyRepo(), nil, helpers.DigestFixed, nil, nil)
	svc.Hash = crypto.Hash(0)

	_, err := svc.HashPassword("password")
	require.ErrorIs(t, err, ErrAlgorithmUnavailable)
}

func TestService_AddNewUser(t *testing.T) {
	repo := newSpyRepo()
	pub := &stubPublisher{}
	idx := &stubIndexer{}
	svc := NewService(repo, nil, helpers.DigestFixed, pub, idx)

	u, err := svc.AddNewUser(context.Background(), candidate())
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)

	saved := repo.saved[0]
	require.Equal(t, " Ada ", saved.FirstName)
	require.Equal(t, "Lovelace", saved.Name)
	require.Equal(t, "Ada.Lovelace@Example.com", saved.Email)
	require.Equal(t, passwordDigest, saved.Password)
	require.Empty(t, saved.ID)

	require.NotEmpty(t, u.ID)
	require.Equal(t, []string{u.ID}, idx.indexed)
	require.Len(t, pub.events, 1)
	ev, ok := pub.events[0].(event.UserCreated)
	require.True(t, ok)
	require.Equal(t, event.TypeUserCreated, ev.Type)
	require.Equal(t, u.ID, ev.UserID)
	require.Equal(t, "Ada.Lovelace@Example.com", ev.Email)
}

func TestService_AddNewUserDoesNotMutateCandidate(t *testing.T) {
	svc := NewService(newSpyRepo(), nil, helpers.DigestFixed, nil, nil)
	c := candidate()

	_, err := svc.AddNewUser(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, "password", c.Password)
	require.Empty(t, c.ID)
}

func TestService_AddNewUserInvalidEmailSkipsSave(t *testing.T) {
	repo := newSpyRepo()
	pub := &stubPublisher{}
	svc := NewService(repo, nil, helpers.DigestFixed, pub, nil)

	c := candidate()
	c.Email = "not-an-email"
	_, err := svc.AddNewUser(context.Background(), c)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Empty(t, repo.saved)
	require.Empty(t, pub.events)

	_, err = svc.AddNewUser(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Empty(t, repo.saved)
}

func TestService_AddNewUserAlgorithmUnavailableStoresEmptyPassword(t *testing.T) {
	logger, hook := test.NewNullLogger()
	repo := newSpyRepo()
	svc := NewService(repo, logger, helpers.DigestFixed, nil, nil)
	svc.Hash = crypto.Hash(0)

	u, err := svc.AddNewUser(context.Background(), candidate())
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Len(t, repo.saved, 1)
	require.Empty(t, repo.saved[0].Password)
	require.Equal(t, "Ada.Lovelace@Example.com", repo.saved[0].Email)

	var hashErrors int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Message == "hash password failed" {
			hashErrors++
			require.ErrorIs(t, e.Data[logrus.ErrorKey].(error), ErrAlgorithmUnavailable)
		}
	}
	require.Equal(t, 1, hashErrors)
}

func TestService_AddNewUserAlgorithmUnavailableStrict(t *testing.T) {
	logger, hook := test.NewNullLogger()
	repo := newSpyRepo()
	svc := NewService(repo, logger, helpers.DigestFixed, nil, nil)
	svc.Hash = crypto.Hash(0)
	svc.StrictHash = true

	_, err := svc.AddNewUser(context.Background(), candidate())
	require.ErrorIs(t, err, ErrAlgorithmUnavailable)
	require.Empty(t, repo.saved)
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	require.Equal(t, "hash password failed", hook.LastEntry().Message)
}

func TestService_AddNewUserStorageErrorPropagates(t *testing.T) {
	storageErr := errors.New("connection reset")
	repo := newSpyRepo()
	repo.saveErr = storageErr
	pub := &stubPublisher{}
	svc := NewService(repo, nil, helpers.DigestFixed, pub, nil)

	_, err := svc.AddNewUser(context.Background(), candidate())
	require.ErrorIs(t, err, storageErr)
	require.Len(t, repo.saved, 1)
	require.Empty(t, pub.events)
}

func TestService_AddNewUserSideChannelFailuresAreLogged(t *testing.T) {
	logger, hook := test.NewNullLogger()
	repo := newSpyRepo()
	pub := &stubPublisher{err: errors.New("broker down")}
	idx := &stubIndexer{err: errors.New("es down")}
	svc := NewService(repo, logger, helpers.DigestFixed, pub, idx)

	u, err := svc.AddNewUser(context.Background(), candidate())
	require.NoError(t, err)
	require.NotNil(t, u)

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	require.Equal(t, 2, warnings)
}

func TestService_LegacyEncoding(t *testing.T) {
	repo := newSpyRepo()
	svc := NewService(repo, nil, helpers.DigestLegacy, nil, nil)

	_, err := svc.AddNewUser(context.Background(), candidate())
	require.NoError(t, err)
	require.Equal(t, passwordDigest, repo.saved[0].Password)
}

func TestService_FindUserByEmail(t *testing.T) {
	repo := newSpyRepo()
	svc := NewService(repo, nil, helpers.DigestFixed, nil, nil)
	ctx := context.Background()

	stored, err := svc.AddNewUser(ctx, candidate())
	require.NoError(t, err)

	got, err := svc.FindUserByEmail(ctx, "Ada.Lovelace@Example.com")
	require.NoError(t, err)
	require.Equal(t, *stored, *got)
}

func TestService_FindUserByEmailMissing(t *testing.T) {
	svc := NewService(newSpyRepo(), nil, helpers.DigestFixed, nil, nil)

	_, err := svc.FindUserByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Contains(t, err.Error(), "user is null")

	_, err = svc.FindUserByEmail(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_FindUserByEmailStorageError(t *testing.T) {
	storageErr := errors.New("timeout")
	repo := newSpyRepo()
	repo.findErr = storageErr
	svc := NewService(repo, nil, helpers.DigestFixed, nil, nil)

	_, err := svc.FindUserByEmail(context.Background(), "ada@example.com")
	require.ErrorIs(t, err, storageErr)
	require.NotErrorIs(t, err, ErrInvalidArgument)
}
