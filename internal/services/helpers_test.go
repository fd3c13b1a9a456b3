package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rohits-web03/clubhouse/internal/logging"
	"github.com/rohits-web03/clubhouse/internal/models"
	"github.com/rohits-web03/clubhouse/internal/repositories"
	"github.com/rohits-web03/clubhouse/internal/testutil"
)

const testCodeWord = "Jodii"

type fixture struct {
	users    *repositories.UserRepository
	sessions *repositories.SessionRepository
	messages *repositories.MessageRepository
	auth     *AuthService
	gate     *MembershipGate
	board    *Board
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	log := logging.Discard()

	f := &fixture{
		users:    repositories.NewUserRepository(db),
		sessions: repositories.NewSessionRepository(db),
		messages: repositories.NewMessageRepository(db),
	}
	f.auth = NewAuthService(f.users, f.sessions, NewBcryptHasher(bcrypt.MinCost), "test-secret", time.Hour, log)
	f.gate = NewMembershipGate(f.users, testCodeWord, log)
	f.board = NewBoard(f.messages, f.users, log)
	return f
}

func (f *fixture) signup(t *testing.T, username, password string) *models.User {
	t.Helper()
	u, err := f.auth.Signup(context.Background(), SignupInput{
		FirstName: "Jo",
		LastName:  "Dii",
		Username:  username,
		Password:  password,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) loginIdentity(t *testing.T, username, password string) Identity {
	t.Helper()
	ctx := context.Background()
	ticket, err := f.auth.Login(ctx, username, password)
	require.NoError(t, err)
	id, err := f.auth.ResolveIdentity(ctx, ticket.Token)
	require.NoError(t, err)
	require.False(t, id.IsAnonymous())
	return id
}
