/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned when the input is neither a compact token nor a JSON document
	// of a credential or presentation. The underlying decoding error is joined with it.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrInvalidDocument is returned by document validation.
	ErrInvalidDocument = errors.New("invalid document")
)

// ShapeError reports a document whose structure cannot be expressed in the claims form.
type ShapeError struct {
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func unknownFormat(cause error) error {
	return errors.Join(ErrUnknownFormat, cause)
}
