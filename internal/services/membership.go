package services

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/logging"
	"github.com/rohits-web03/clubhouse/internal/models"
)

type GateOutcome int

const (
	OutcomeRejected GateOutcome = iota
	OutcomeGranted
	OutcomeAlreadyMember
)

func (o GateOutcome) String() string {
	switch o {
	case OutcomeGranted:
		return "granted"
	case OutcomeAlreadyMember:
		return "already_member"
	default:
		return "rejected"
	}
}

// MembershipGate promotes a Regular user to Member when they submit the
// shared code word. Wrong words are not errors.
type MembershipGate struct {
	users    UserStore
	codeWord string
	log      logging.Logger
}

func NewMembershipGate(users UserStore, codeWord string, log logging.Logger) *MembershipGate {
	return &MembershipGate{
		users:    users,
		codeWord: strings.TrimSpace(codeWord),
		log:      log,
	}
}

// SubmitCodeWord evaluates codeWord for identity and returns the outcome
// together with the identity as it stands afterwards.
func (g *MembershipGate) SubmitCodeWord(ctx context.Context, identity Identity, codeWord string) (GateOutcome, Identity, error) {
	user, ok := identity.User()
	if !ok {
		return OutcomeRejected, identity, common.ErrAnonymous
	}
	if user.IsMember() {
		return OutcomeAlreadyMember, identity, nil
	}

	if !g.matches(codeWord) {
		g.log.Debug(ctx, "code word rejected", "user_id", user.ID)
		return OutcomeRejected, identity, nil
	}

	next, _ := user.Membership.Promote()
	updated, err := g.users.Update(ctx, user.ID, models.UserPatch{Membership: &next})
	if err != nil {
		return OutcomeRejected, identity, err
	}

	g.log.Info(ctx, "membership granted", "user_id", user.ID)
	return OutcomeGranted, IdentityOf(*updated), nil
}

func (g *MembershipGate) matches(codeWord string) bool {
	if g.codeWord == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(codeWord)), []byte(g.codeWord)) == 1
}
