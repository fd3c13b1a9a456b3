package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/logging"
)

func TestSubmitCodeWord_GrantsMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.signup(t, "jodii", "secret-word")
	id := f.loginIdentity(t, "jodii", "secret-word")

	outcome, after, err := f.gate.SubmitCodeWord(ctx, id, "  Jodii ")
	require.NoError(t, err)
	assert.Equal(t, OutcomeGranted, outcome)
	assert.True(t, after.IsMember())

	stored, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsMember())
}

func TestSubmitCodeWord_WrongWordIsSilent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.signup(t, "jodii", "secret-word")
	id := f.loginIdentity(t, "jodii", "secret-word")

	for _, word := range []string{"", "jodii", "Jodi", "Jodii!"} {
		outcome, after, err := f.gate.SubmitCodeWord(ctx, id, word)
		require.NoError(t, err, word)
		assert.Equal(t, OutcomeRejected, outcome, word)
		assert.False(t, after.IsMember(), word)
	}

	stored, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsMember())
}

func TestSubmitCodeWord_MembershipIsMonotonic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.signup(t, "jodii", "secret-word")
	id := f.loginIdentity(t, "jodii", "secret-word")

	_, id, err := f.gate.SubmitCodeWord(ctx, id, testCodeWord)
	require.NoError(t, err)

	for _, word := range []string{"wrong", testCodeWord, ""} {
		outcome, next, err := f.gate.SubmitCodeWord(ctx, id, word)
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyMember, outcome)
		assert.True(t, next.IsMember())
	}

	// a fresh login sees the stored membership
	fresh := f.loginIdentity(t, "jodii", "secret-word")
	assert.True(t, fresh.IsMember())
	outcome, _, err := f.gate.SubmitCodeWord(ctx, fresh, "wrong")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyMember, outcome)

	stored, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsMember())
}

func TestSubmitCodeWord_Anonymous(t *testing.T) {
	f := newFixture(t)

	outcome, _, err := f.gate.SubmitCodeWord(context.Background(), Anonymous, testCodeWord)
	assert.ErrorIs(t, err, common.ErrAnonymous)
	assert.Equal(t, OutcomeRejected, outcome)
}

func TestSubmitCodeWord_EmptyConfiguredWordNeverMatches(t *testing.T) {
	f := newFixture(t)
	gate := NewMembershipGate(f.users, "   ", logging.Discard())
	f.signup(t, "jodii", "secret-word")
	id := f.loginIdentity(t, "jodii", "secret-word")

	outcome, _, err := gate.SubmitCodeWord(context.Background(), id, "")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, outcome)
}

func TestGateOutcome_String(t *testing.T) {
	assert.Equal(t, "granted", OutcomeGranted.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "already_member", OutcomeAlreadyMember.String())
}
