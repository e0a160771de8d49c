/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

//go:generate mockgen -destination interfaces_mocks_test.go -package verifiable -source=options.go

import (
	"github.com/trustbloc/vc-normalize/jwt"
)

// ClaimsDecoder extracts the claims payload of a compact token. It is not expected to verify the signature.
type ClaimsDecoder interface {
	DecodeClaims(token string) (map[string]interface{}, error)
}

// ClaimsDecoderFunc is a function adapter of ClaimsDecoder.
type ClaimsDecoderFunc func(token string) (map[string]interface{}, error)

// DecodeClaims calls f(token).
func (f ClaimsDecoderFunc) DecodeClaims(token string) (map[string]interface{}, error) {
	return f(token)
}

type options struct {
	keepOriginalFields bool
	decoder            ClaimsDecoder
	proofType          string
}

// Opt configures normalization and transformation.
type Opt func(opts *options)

// WithOriginalFields keeps the source fields of every derived field. By default a field consumed
// to derive its counterpart in the other form is removed.
func WithOriginalFields() Opt {
	return func(opts *options) {
		opts.keepOriginalFields = true
	}
}

// WithClaimsDecoder sets the decoder of compact tokens. The default one parses JWS and unsecured JWT
// without signature verification.
func WithClaimsDecoder(decoder ClaimsDecoder) Opt {
	return func(opts *options) {
		if decoder != nil {
			opts.decoder = decoder
		}
	}
}

// WithProofType sets the type of proof attached to documents decoded from a compact token.
// JwtProof2020 is used by default.
func WithProofType(proofType string) Opt {
	return func(opts *options) {
		opts.proofType = proofType
	}
}

func getOpts(opts []Opt) *options {
	o := &options{
		decoder:   ClaimsDecoderFunc(jwt.DecodeClaims),
		proofType: JWTProofType,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
