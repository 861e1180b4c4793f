package service

import (
	"errors"

	"litmark/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
