package services

import (
	"github.com/google/uuid"

	"github.com/rohits-web03/clubhouse/internal/models"
)

// Identity is who a request acts as: a stored user, or Anonymous.
type Identity struct {
	user *models.User
}

// Anonymous is the identity of a request with no live session.
var Anonymous = Identity{}

func IdentityOf(u models.User) Identity {
	return Identity{user: &u}
}

func (i Identity) IsAnonymous() bool {
	return i.user == nil
}

// User returns a copy of the bound user; ok is false for Anonymous.
func (i Identity) User() (u models.User, ok bool) {
	if i.user == nil {
		return models.User{}, false
	}
	return *i.user, true
}

func (i Identity) UserID() uuid.UUID {
	if i.user == nil {
		return uuid.Nil
	}
	return i.user.ID
}

func (i Identity) IsMember() bool {
	return i.user != nil && i.user.IsMember()
}
