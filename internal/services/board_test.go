package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/models"
)

func TestBoard_PostAndListNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signup(t, "jodii", "secret-word")
	id := f.loginIdentity(t, "jodii", "secret-word")

	clock := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	f.board.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for _, title := range []string{"first", "second", "third"} {
		_, err := f.board.PostMessage(ctx, id, title, "body of "+title)
		require.NoError(t, err)
	}

	entries, err := f.board.ListMessages(ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Message.Title)
	assert.Equal(t, "first", entries[2].Message.Title)
	assert.Equal(t, "Jo Dii", entries[0].Author)
	assert.Equal(t, "jodii", entries[0].Username)

	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].Message.Timestamp.After(entries[i].Message.Timestamp))
	}

	msg, err := f.board.PostMessage(ctx, id, "  fourth ", " newest ")
	require.NoError(t, err)
	assert.Equal(t, "fourth", msg.Title)
	assert.Equal(t, "newest", msg.Text)

	entries, err = f.board.ListMessages(ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, msg.ID, entries[0].Message.ID)
}

func TestBoard_PostValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signup(t, "jodii", "secret-word")
	id := f.loginIdentity(t, "jodii", "secret-word")

	cases := []struct{ title, text, field string }{
		{"", "text", "title"},
		{"title", "   ", "text"},
	}
	for _, tc := range cases {
		_, err := f.board.PostMessage(ctx, id, tc.title, tc.text)
		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, tc.field)
	}

	n, err := f.messages.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBoard_AnonymousIsRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.board.ListMessages(ctx, Anonymous)
	assert.ErrorIs(t, err, common.ErrAnonymous)

	_, err = f.board.PostMessage(ctx, Anonymous, "t", "x")
	assert.ErrorIs(t, err, common.ErrAnonymous)
}

func TestBoard_OrphanedAuthorUsesPlaceholder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signup(t, "jodii", "secret-word")
	id := f.loginIdentity(t, "jodii", "secret-word")

	_, err := f.messages.Create(ctx, &models.Message{
		Title:     "ghost",
		Text:      "author is gone",
		AuthorID:  uuid.New(),
		Timestamp: time.Now().UTC(),
	})
	require.NoError(t, err)

	entries, err := f.board.ListMessages(ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Orphaned)
	assert.Equal(t, unknownAuthor, entries[0].Author)
}
