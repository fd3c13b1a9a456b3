package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/logging"
)

type ArchiveResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Messages  int       `json:"messages"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type archiveDocument struct {
	ExportedAt time.Time    `json:"exportedAt"`
	ExportedBy string       `json:"exportedBy"`
	Entries    []BoardEntry `json:"entries"`
}

// Archiver writes a snapshot of the board to object storage for members.
type Archiver struct {
	board  *Board
	store  ObjectStore
	urlTTL time.Duration
	log    logging.Logger
	now    func() time.Time
}

// NewArchiver accepts a nil store, in which case every export reports
// common.ErrUnavailable.
func NewArchiver(board *Board, store ObjectStore, urlTTL time.Duration, log logging.Logger) *Archiver {
	return &Archiver{
		board:  board,
		store:  store,
		urlTTL: urlTTL,
		log:    log,
		now:    time.Now,
	}
}

func (a *Archiver) Export(ctx context.Context, identity Identity) (*ArchiveResult, error) {
	user, ok := identity.User()
	if !ok {
		return nil, common.ErrAnonymous
	}
	if !user.IsMember() {
		return nil, common.ErrForbidden
	}
	if a.store == nil {
		return nil, common.ErrUnavailable
	}

	entries, err := a.board.ListMessages(ctx, identity)
	if err != nil {
		return nil, err
	}

	now := a.now().UTC()
	body, err := json.Marshal(archiveDocument{
		ExportedAt: now,
		ExportedBy: user.Username,
		Entries:    entries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode archive: %w", err)
	}

	key := fmt.Sprintf("archives/%s/%d.json", user.ID, now.Unix())
	if err := a.store.Put(ctx, key, "application/json", body); err != nil {
		return nil, err
	}

	url, err := a.store.PresignGet(ctx, key, a.urlTTL)
	if err != nil {
		return nil, err
	}

	a.log.Info(ctx, "board archived", "user_id", user.ID, "key", key, "messages", len(entries))
	return &ArchiveResult{
		Key:       key,
		URL:       url,
		Messages:  len(entries),
		ExpiresAt: now.Add(a.urlTTL),
	}, nil
}
