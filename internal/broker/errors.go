package broker

import (
	"errors"

	"github.com/andrelcunha/ottermq/internal/storage"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCapacity        = storage.ErrCapacity
)
