package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures across the builder modules.
var (
	ErrNotFound             = errors.New("requested resource not found")
	ErrUnknownSectionType   = errors.New("unknown section type")
	ErrIndexOutOfRange      = errors.New("section index out of range")
	ErrSaveFailed           = errors.New("remote save failed")
	ErrSaveInFlight         = errors.New("a save is already in flight")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("file exceeds the size ceiling")
)
