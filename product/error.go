package product

import "github.com/cockroachdb/errors"

var (
	// ErrNameEmpty product name is empty
	ErrNameEmpty = errors.New("product name is empty")

	// ErrUnknownValue color or size name is not known
	ErrUnknownValue = errors.New("unknown value")

	// ErrFormat catalog file format is not supported
	ErrFormat = errors.New("unsupported catalog format")
)
