package directory

import "errors"

// Sentinel errors for store and directory operations. All are recoverable;
// a failed operation never leaves the store partially mutated.
var (
	ErrNotInitialized     = errors.New("store not initialized")
	ErrAlreadyInitialized = errors.New("store already initialized")
	ErrDirectoryNotFound  = errors.New("directory not found")
	ErrDirectoryFull      = errors.New("directory full")
	ErrDuplicateCode      = errors.New("speed-dial code already assigned")
	ErrCodeNotFound       = errors.New("speed-dial code not found")
	ErrCodeTooLong        = errors.New("speed-dial code too long")
	ErrNumberTooLong      = errors.New("phone number too long")
	ErrEmptyCode          = errors.New("speed-dial code is empty")
	ErrEmptyName          = errors.New("directory name is empty")
)
