package journal

import "errors"

var (
	// ErrAppendFailed indicates an entry could not be persisted.
	ErrAppendFailed = errors.New("journal: failed to append entry")

	// ErrReadFailed indicates the entries could not be loaded.
	ErrReadFailed = errors.New("journal: failed to read entries")
)
