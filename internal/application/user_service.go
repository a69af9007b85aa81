package application

import (
	"context"
	"crypto"
	"errors"
	"expvar"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/gaienhofen/user-onboarding/internal/domain/entity"
	"github.com/gaienhofen/user-onboarding/internal/domain/event"
	repo "github.com/gaienhofen/user-onboarding/internal/domain/repository"
	"github.com/gaienhofen/user-onboarding/pkg/helpers"
	"github.com/gaienhofen/user-onboarding/pkg/validation"
)

var (
	usersCreated     = expvar.NewInt("users_created")
	userLookups      = expvar.NewInt("user_lookups")
	userLookupMisses = expvar.NewInt("user_lookup_misses")
	invalidArguments = expvar.NewInt("invalid_arguments")
)

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// UserIndexer makes stored users searchable.
type UserIndexer interface {
	IndexUser(ctx context.Context, u *entity.User) error
}

// Service onboards users: it validates and hashes candidates into canonical
// records and looks stored records up by email.
type Service struct {
	Repo       repo.UserRepository
	Logger     *logrus.Logger
	Hash       crypto.Hash
	Encoding   helpers.DigestEncoding
	// StrictHash makes a missing hash algorithm fail AddNewUser. When false
	// the failure is logged and the record is stored with an empty password.
	StrictHash bool
	Events     EventPublisher
	Index      UserIndexer
}

// NewService wires the service. events and index are optional.
func NewService(repo repo.UserRepository, logger *logrus.Logger, encoding helpers.DigestEncoding, events EventPublisher, index UserIndexer) *Service {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	if encoding == "" {
		encoding = helpers.DigestFixed
	}
	return &Service{
		Repo:     repo,
		Logger:   logger,
		Hash:     crypto.SHA256,
		Encoding: encoding,
		Events:   events,
		Index:    index,
	}
}

// AddNewUser stores the canonical form of candidate and returns it with the
// identity assigned by persistence. Nothing is saved when validation fails,
// or when hashing fails and StrictHash is set. Storage errors are returned
// unchanged.
func (s *Service) AddNewUser(ctx context.Context, candidate *entity.User) (*entity.User, error) {
	s.Logger.Debug("--> AddNewUser")
	u, err := s.createCanonicalUser(candidate)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Save(ctx, u); err != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Error("save user failed")
		return nil, err
	}
	usersCreated.Add(1)

	s.publishCreated(ctx, u)
	s.indexUser(ctx, u)
	s.Logger.Debug("<-- AddNewUser")
	return u, nil
}

func (s *Service) createCanonicalUser(candidate *entity.User) (*entity.User, error) {
	s.Logger.Debug("--> createCanonicalUser")
	if candidate == nil {
		return nil, invalidArgument("user is null")
	}
	email, err := s.ValidateEmail(candidate.Email)
	if err != nil {
		return nil, err
	}
	hash, err := s.HashPassword(candidate.Password)
	if err != nil {
		s.Logger.WithError(err).WithField("email", email).Error("hash password failed")
		if s.StrictHash {
			return nil, err
		}
		hash = ""
	}
	s.Logger.Debug("<-- createCanonicalUser")
	return &entity.User{
		FirstName: candidate.FirstName,
		Name:      candidate.Name,
		Email:     email,
		Password:  hash,
	}, nil
}

// ValidateEmail returns email unchanged when it is syntactically valid.
func (s *Service) ValidateEmail(email string) (string, error) {
	if !validation.IsEmail(email) {
		return "", invalidArgument("email is invalid")
	}
	return email, nil
}

// HashPassword returns the hex digest of the UTF-8 bytes of plain using the
// configured encoding.
func (s *Service) HashPassword(plain string) (string, error) {
	out, err := helpers.HashPassword(s.Hash, plain, s.Encoding)
	if errors.Is(err, helpers.ErrHashUnavailable) {
		return "", fmt.Errorf("%w: %v", ErrAlgorithmUnavailable, err)
	}
	return out, err
}

// FindUserByEmail returns the stored record for email. An unknown email is a
// caller error and yields ErrInvalidArgument.
func (s *Service) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.Logger.Debug("--> FindUserByEmail")
	if email == "" {
		return nil, invalidArgument("email is required")
	}
	userLookups.Add(1)
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		s.Logger.WithError(err).Error("find user by email failed")
		return nil, err
	}
	if u == nil {
		userLookupMisses.Add(1)
		return nil, invalidArgument("user is null")
	}
	s.Logger.Debug("<-- FindUserByEmail")
	return u, nil
}

func (s *Service) publishCreated(ctx context.Context, u *entity.User) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishJSON(ctx, event.NewUserCreated(u)); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("publish user.created failed")
	}
}

func (s *Service) indexUser(ctx context.Context, u *entity.User) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexUser(ctx, u); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
	}
}
