package dao

import (
	"errors"

	"github.com/asdine/storm/v3"
)

// Slot holding the admin session flag.
const SessionKey = "adminLoggedIn"

type SessionDao interface {
	//Authenticated reports whether an admin session is active
	Authenticated() bool
	//SetAuthenticated stores the admin session flag
	SetAuthenticated(active bool) error
}

func NewSessionDao(db Db) SessionDao {
	return &sessionDao{db: db}
}

type sessionDao struct {
	db Db
}

func (d sessionDao) Authenticated() bool {
	raw, err := d.db.GetBytes(SlotBucket, SessionKey)
	if err != nil {
		return false
	}
	return string(raw) == "true"
}

func (d sessionDao) SetAuthenticated(active bool) error {
	value := "false"
	if active {
		value = "true"
	}
	return d.db.SetBytes(SlotBucket, SessionKey, []byte(value))
}

func isNotFound(err error) bool {
	return errors.Is(err, storm.ErrNotFound)
}
