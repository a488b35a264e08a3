// SPDX-License-Identifier: MIT

package arith

import "errors"

var (
	// ErrUnsupportedElementType is returned when no operator surface can be
	// resolved for an element type.
	ErrUnsupportedElementType = errors.New("arith: unsupported element type")

	// ErrAlreadyResolved is returned by Register when the type was already
	// resolved (or registered) earlier in the process.
	ErrAlreadyResolved = errors.New("arith: element type already resolved")

	// ErrIncompleteTable is returned by Register when a required operator is nil.
	ErrIncompleteTable = errors.New("arith: operator table is incomplete")

	// ErrZeroNotIdentity is returned by Register when IsZero rejects the zero
	// value of T. Matrix storage fills and skips cells with that value.
	ErrZeroNotIdentity = errors.New("arith: zero value is not the additive identity")
)
