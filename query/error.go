package query

import "github.com/cockroachdb/errors"

var (
	// ErrSyntax the expression is malformed
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownAttribute the expression tests an attribute nobody registered
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrRegistered the attribute is already registered
	ErrRegistered = errors.New("attribute registered")
)
