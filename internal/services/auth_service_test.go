package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/models"
)

func TestSignup_StoresVerifiableHash(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.signup(t, "jodii", "secret-word")
	assert.Equal(t, models.Regular, created.Membership)

	stored, err := f.users.FindByUsername(ctx, "jodii")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-word", stored.PasswordHash)
	assert.True(t, f.auth.hasher.Verify("secret-word", stored.PasswordHash))
	assert.Equal(t, "Jo Dii", stored.FullName())
}

func TestSignup_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Signup(context.Background(), SignupInput{
		FirstName: "  ",
		LastName:  "",
		Username:  "ab",
		Password:  "short",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))

	var verr *common.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "firstName")
	assert.Contains(t, verr.Fields, "lastName")
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "password")

	_, err = f.auth.Signup(context.Background(), SignupInput{
		FirstName: "Jo",
		LastName:  "Dii",
		Username:  "abcdefghijklmnopqrstuvwxyz", // 26
		Password:  "long-enough",
	})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "username")
}

func TestSignup_DuplicateUsername(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "twice", "secret-word")

	_, err := f.auth.Signup(context.Background(), SignupInput{
		FirstName: "Other",
		LastName:  "Person",
		Username:  "twice",
		Password:  "another-secret",
	})
	assert.ErrorIs(t, err, common.ErrDuplicateUsername)
}

func TestLogin_ResolvesToUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.signup(t, "jodii", "secret-word")

	ticket, err := f.auth.Login(ctx, "jodii", "secret-word")
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.Token)
	assert.Equal(t, u.ID, ticket.Session.UserID)

	id, err := f.auth.ResolveIdentity(ctx, ticket.Token)
	require.NoError(t, err)
	got, ok := id.User()
	require.True(t, ok)
	assert.Equal(t, u.ID, got.ID)
	assert.False(t, id.IsMember())
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signup(t, "jodii", "secret-word")

	_, wrongSecret := f.auth.Login(ctx, "jodii", "not-the-secret")
	_, unknownUser := f.auth.Login(ctx, "nobody", "secret-word")

	assert.Equal(t, common.ErrInvalidCredentials, wrongSecret)
	assert.Equal(t, common.ErrInvalidCredentials, unknownUser)
}

func TestResolveIdentity_AnonymousCases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		id, err := f.auth.ResolveIdentity(ctx, token)
		require.NoError(t, err)
		assert.True(t, id.IsAnonymous(), "token %q", token)
		_, ok := id.User()
		assert.False(t, ok)
	}

	// signed by someone else
	other := NewAuthService(f.users, f.sessions, f.auth.hasher, "other-secret", time.Hour, f.auth.log)
	f.signup(t, "jodii", "secret-word")
	ticket, err := other.Login(ctx, "jodii", "secret-word")
	require.NoError(t, err)

	id, err := f.auth.ResolveIdentity(ctx, ticket.Token)
	require.NoError(t, err)
	assert.True(t, id.IsAnonymous())
}

func TestResolveIdentity_ExpiredSessionIsRemoved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signup(t, "jodii", "secret-word")

	ticket, err := f.auth.Login(ctx, "jodii", "secret-word")
	require.NoError(t, err)

	f.auth.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	id, err := f.auth.ResolveIdentity(ctx, ticket.Token)
	require.NoError(t, err)
	assert.True(t, id.IsAnonymous())

	_, err = f.sessions.Find(ctx, ticket.Session.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLogout_RevokesAndIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signup(t, "jodii", "secret-word")

	ticket, err := f.auth.Login(ctx, "jodii", "secret-word")
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx, ticket.Token))
	require.NoError(t, f.auth.Logout(ctx, ticket.Token))
	require.NoError(t, f.auth.Logout(ctx, ""))
	require.NoError(t, f.auth.Logout(ctx, "garbage"))

	id, err := f.auth.ResolveIdentity(ctx, ticket.Token)
	require.NoError(t, err)
	assert.True(t, id.IsAnonymous())
}

func TestLogout_OnlyEndsOneSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signup(t, "jodii", "secret-word")

	first, err := f.auth.Login(ctx, "jodii", "secret-word")
	require.NoError(t, err)
	second, err := f.auth.Login(ctx, "jodii", "secret-word")
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx, first.Token))

	id, err := f.auth.ResolveIdentity(ctx, second.Token)
	require.NoError(t, err)
	assert.False(t, id.IsAnonymous())
}

func TestLoginWithGoogle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	profile := GoogleProfile{ID: "g-42", Email: "Jo.Dii@example.com", GivenName: "Jo", FamilyName: "Dii"}

	_, err := f.auth.LoginWithGoogle(ctx, profile, false)
	assert.ErrorIs(t, err, common.ErrNotFound)

	ticket, err := f.auth.LoginWithGoogle(ctx, profile, true)
	require.NoError(t, err)
	assert.Equal(t, "jo-dii", ticket.User.Username)
	assert.Equal(t, models.Regular, ticket.User.Membership)

	_, err = f.auth.LoginWithGoogle(ctx, profile, true)
	assert.ErrorIs(t, err, common.ErrDuplicateUsername)

	again, err := f.auth.LoginWithGoogle(ctx, profile, false)
	require.NoError(t, err)
	assert.Equal(t, ticket.User.ID, again.User.ID)

	_, err = f.auth.LoginWithGoogle(ctx, GoogleProfile{}, false)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestUsernameFromEmail(t *testing.T) {
	assert.Equal(t, "jo-dii", usernameFromEmail("Jo.Dii@example.com", "1"))
	assert.Equal(t, "g-12345", usernameFromEmail("x@example.com", "12345"))
	long := usernameFromEmail("a-very-long-local-part-that-keeps-going@example.com", "1")
	assert.LessOrEqual(t, len(long), 25)
	assert.NotEqual(t, '-', rune(long[len(long)-1]))
}
