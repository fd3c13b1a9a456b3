package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gosimple/slug"

	"github.com/rohits-web03/clubhouse/internal/auth"
	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/logging"
	"github.com/rohits-web03/clubhouse/internal/models"
	"github.com/rohits-web03/clubhouse/internal/utils"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 25
	minSecretLen   = 7
)

type SignupInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Ticket is the result of a successful login: the stored session and the
// signed value the client presents on later requests.
type Ticket struct {
	Session models.Session
	Token   string
	User    models.User
}

// GoogleProfile is the subset of the Google userinfo response we keep.
type GoogleProfile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Name       string `json:"name"`
}

type AuthService struct {
	users      UserStore
	sessions   SessionStore
	hasher     PasswordHasher
	secret     []byte
	sessionTTL time.Duration
	log        logging.Logger
	now        func() time.Time
}

func NewAuthService(users UserStore, sessions SessionStore, hasher PasswordHasher, secret string, sessionTTL time.Duration, log logging.Logger) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		hasher:     hasher,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		log:        log,
		now:        time.Now,
	}
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Username = strings.TrimSpace(in.Username)
	in.Password = strings.TrimSpace(in.Password)

	verr := common.NewValidationError()
	if in.FirstName == "" {
		verr.Add("firstName", "field cant be empty")
	}
	if in.LastName == "" {
		verr.Add("lastName", "field cant be empty")
	}
	switch n := utf8.RuneCountInString(in.Username); {
	case n < minUsernameLen:
		verr.Add("username", fmt.Sprintf("username must be at least %d characters long", minUsernameLen))
	case n > maxUsernameLen:
		verr.Add("username", fmt.Sprintf("username must be at most %d characters long", maxUsernameLen))
	}
	if utf8.RuneCountInString(in.Password) < minSecretLen {
		verr.Add("password", fmt.Sprintf("password must be at least %d characters long", minSecretLen))
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		PasswordHash: hash,
		Membership:   models.Regular,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user signed up", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login checks the credentials and opens a new session. Unknown usernames
// and wrong secrets fail with the same error.
func (s *AuthService) Login(ctx context.Context, username, secret string) (*Ticket, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(strings.TrimSpace(secret), user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.openSession(ctx, *user)
}

// LoginWithGoogle opens a session for the account linked to profile. With
// register set, a missing account is created first.
func (s *AuthService) LoginWithGoogle(ctx context.Context, profile GoogleProfile, register bool) (*Ticket, error) {
	if profile.ID == "" {
		return nil, common.ErrInvalidCredentials
	}

	user, err := s.users.FindByGoogleID(ctx, profile.ID)
	switch {
	case err == nil:
		if register {
			return nil, fmt.Errorf("google account already linked: %w", common.ErrDuplicateUsername)
		}
	case errors.Is(err, common.ErrNotFound):
		if !register {
			return nil, common.ErrNotFound
		}
		user, err = s.createGoogleUser(ctx, profile)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return s.openSession(ctx, *user)
}

func (s *AuthService) createGoogleUser(ctx context.Context, profile GoogleProfile) (*models.User, error) {
	// Google accounts never log in with a password, but the stored hash must
	// still be a real digest.
	secret, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(secret)
	if err != nil {
		return nil, err
	}

	first, last := profile.GivenName, profile.FamilyName
	if first == "" {
		first = profile.Name
	}
	if first == "" {
		first = "Google"
	}
	if last == "" {
		last = "User"
	}

	googleID := profile.ID
	user, err := s.users.Create(ctx, &models.User{
		FirstName:    first,
		LastName:     last,
		Username:     usernameFromEmail(profile.Email, profile.ID),
		PasswordHash: hash,
		Membership:   models.Regular,
		GoogleID:     &googleID,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user signed up with google", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// usernameFromEmail slugs the local part of email, falling back to the
// Google id, and fits the result into the username length limits.
func usernameFromEmail(email, fallback string) string {
	local, _, _ := strings.Cut(email, "@")
	name := slug.Make(local)
	if utf8.RuneCountInString(name) < minUsernameLen {
		name = "g-" + slug.Make(fallback)
	}
	if len(name) > maxUsernameLen {
		name = strings.TrimRight(name[:maxUsernameLen], "-")
	}
	return name
}

func (s *AuthService) openSession(ctx context.Context, user models.User) (*Ticket, error) {
	id, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to create session id: %w", err)
	}

	session := models.Session{
		ID:        id,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.sessionTTL).UTC(),
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(session.ID, user.ID.String(), s.secret, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID)
	return &Ticket{Session: session, Token: token, User: user}, nil
}

// ResolveIdentity turns a presented session token into the current
// identity. Anything short of a live session for an existing user yields
// Anonymous; only store failures are returned as errors.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Anonymous, nil
	}

	claims, err := auth.ParseToken(token, s.secret)
	if err != nil {
		s.log.Debug(ctx, "ignoring session token", "error", err)
		return Anonymous, nil
	}

	session, err := s.sessions.Find(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return Anonymous, nil
		}
		return Anonymous, err
	}

	if session.UserID.String() != claims.UserID {
		s.log.Warn(ctx, "session token does not match session owner", "session_user_id", session.UserID)
		return Anonymous, nil
	}

	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			s.log.Warn(ctx, "failed to delete expired session", "error", err)
		}
		return Anonymous, nil
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return Anonymous, nil
		}
		return Anonymous, err
	}

	return IdentityOf(*user), nil
}

// Logout removes the session behind token. It is safe to call with an
// invalid or already revoked token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := auth.ParseToken(token, s.secret)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return err
	}
	s.log.Info(ctx, "user logged out", "user_id", claims.UserID)
	return nil
}
