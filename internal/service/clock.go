package service

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Clock returns the current instant. Services take one so tests can pin time.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now()
}

// notFound translates a missing record into target and passes other errors through.
func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
