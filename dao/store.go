package dao

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound covers both a missing primary entity and a missing required
// related entity; handlers choose the user-facing message.
var ErrNotFound = errors.New("record not found")

// Store is the data-access layer. Every mutating operation runs inside a
// single transaction, so derived state (order totals, restaurant ratings)
// moves atomically with the rows it is derived from.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// wrapNotFound translates gorm's record-not-found into the store sentinel.
func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
