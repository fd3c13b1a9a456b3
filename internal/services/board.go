package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/logging"
	"github.com/rohits-web03/clubhouse/internal/models"
)

const unknownAuthor = "[unknown author]"

// BoardEntry is a message with its author resolved for display.
type BoardEntry struct {
	Message  models.Message `json:"message"`
	Author   string         `json:"author"`
	Username string         `json:"username,omitempty"`
	Orphaned bool           `json:"orphaned,omitempty"`
}

type Board struct {
	messages MessageStore
	users    UserStore
	log      logging.Logger
	now      func() time.Time
}

func NewBoard(messages MessageStore, users UserStore, log logging.Logger) *Board {
	return &Board{
		messages: messages,
		users:    users,
		log:      log,
		now:      time.Now,
	}
}

// ListMessages returns the board newest first. A message whose author no
// longer exists is kept with a placeholder name.
func (b *Board) ListMessages(ctx context.Context, identity Identity) ([]BoardEntry, error) {
	if identity.IsAnonymous() {
		return nil, common.ErrAnonymous
	}

	msgs, err := b.messages.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(msgs))
	ids := make([]uuid.UUID, 0, len(msgs))
	for _, m := range msgs {
		if _, ok := seen[m.AuthorID]; !ok {
			seen[m.AuthorID] = struct{}{}
			ids = append(ids, m.AuthorID)
		}
	}

	authors, err := b.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]BoardEntry, 0, len(msgs))
	for _, m := range msgs {
		entry := BoardEntry{Message: m}
		if author, ok := authors[m.AuthorID]; ok {
			entry.Author = author.FullName()
			entry.Username = author.Username
		} else {
			b.log.Warn(ctx, "message references missing author", "message_id", m.ID, "author_id", m.AuthorID)
			entry.Author = unknownAuthor
			entry.Orphaned = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// PostMessage stores a message attributed to identity. Membership is not
// checked here.
func (b *Board) PostMessage(ctx context.Context, identity Identity, title, text string) (*models.Message, error) {
	if identity.IsAnonymous() {
		return nil, common.ErrAnonymous
	}

	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)

	verr := common.NewValidationError()
	if title == "" {
		verr.Add("title", "field cant be empty")
	}
	if text == "" {
		verr.Add("text", "field cant be empty")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	msg, err := b.messages.Create(ctx, &models.Message{
		Title:     title,
		Text:      text,
		AuthorID:  identity.UserID(),
		Timestamp: b.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	b.log.Info(ctx, "message posted", "message_id", msg.ID, "user_id", msg.AuthorID)
	return msg, nil
}
