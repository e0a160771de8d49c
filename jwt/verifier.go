/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwt

//go:generate mockgen -destination verifier_mocks_test.go -package jwt -source=verifier.go

import (
	"errors"

	"github.com/trustbloc/kms-go/doc/jose"
)

// ProofChecker checks the signature of a compact token.
type ProofChecker interface {
	CheckJWTProof(headers jose.Headers, payload, msg, signature []byte) error
}

// claimsOnlyChecker accepts any signature. It is used when only the claims of a token are needed.
type claimsOnlyChecker struct{}

func (claimsOnlyChecker) CheckJWTProof(headers jose.Headers, _, _, _ []byte) error {
	if _, ok := headers.Algorithm(); !ok {
		return errors.New("alg is not defined")
	}

	return nil
}

type unsecuredJWTVerifier struct{}

func (*unsecuredJWTVerifier) CheckJWTProof(joseHeaders jose.Headers, _, _, signature []byte) error {
	alg, ok := joseHeaders.Algorithm()
	if !ok {
		return errors.New("alg is not defined")
	}

	if alg != AlgorithmNone {
		return errors.New("alg value is not 'none'")
	}

	if len(signature) > 0 {
		return errors.New("not empty signature")
	}

	return nil
}

// UnsecuredJWTVerifier provides verifier for unsecured JWT.
func UnsecuredJWTVerifier() ProofChecker {
	return &unsecuredJWTVerifier{}
}

type joseVerifier struct {
	proofChecker ProofChecker
}

func (v *joseVerifier) Verify(joseHeaders jose.Headers, payload, signingInput, signature []byte) error {
	return v.proofChecker.CheckJWTProof(joseHeaders, payload, signingInput, signature)
}
