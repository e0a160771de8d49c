/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwt extracts claims from compact JSON Web Tokens (https://tools.ietf.org/html/rfc7519)
// and builds unsecured tokens from claim sets. Signatures are not verified unless a ProofChecker
// is supplied by the caller.
package jwt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/trustbloc/kms-go/doc/jose"
)

const (
	// TypeJWT defines JWT type.
	TypeJWT = "JWT"
	// TypeSDJWT defines SD-JWT type v5+.
	TypeSDJWT = "SD-JWT"

	// AlgorithmNone used to indicate unsecured JWT.
	AlgorithmNone = "none"
)

// compactFormat matches three dot-separated base64url segments. The signature segment
// may be empty (unsecured JWT).
var compactFormat = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*$`)

// parseOpts holds options for the JWT parsing.
type parseOpts struct {
	proofChecker ProofChecker
}

// ParseOpt is the JWT Parser option.
type ParseOpt func(opts *parseOpts)

// WithProofChecker option sets a checker of the token signature.
// Without it the token is parsed and its claims are extracted with no signature check.
func WithProofChecker(proofChecker ProofChecker) ParseOpt {
	return func(opts *parseOpts) {
		opts.proofChecker = proofChecker
	}
}

type unsecuredJWTSigner struct{}

func (s unsecuredJWTSigner) Sign(_ []byte) ([]byte, error) {
	return []byte(""), nil
}

func (s unsecuredJWTSigner) Headers() jose.Headers {
	return map[string]interface{}{
		jose.HeaderAlgorithm: AlgorithmNone,
		jose.HeaderType:      TypeJWT,
	}
}

// JSONWebToken defines JSON Web Token (https://tools.ietf.org/html/rfc7519)
type JSONWebToken struct {
	Headers jose.Headers

	Payload map[string]interface{}

	jws *jose.JSONWebSignature
}

// Parse parses input JWT in serialized form into JSON Web Token.
// Both signed and unsecured compact forms are accepted.
func Parse(jwtSerialized string, opts ...ParseOpt) (*JSONWebToken, error) {
	if !IsCompact(jwtSerialized) {
		return nil, errors.New("JWT of compacted JWS form is supported only")
	}

	pOpts := &parseOpts{proofChecker: claimsOnlyChecker{}}

	for _, opt := range opts {
		opt(pOpts)
	}

	return parseJWS(jwtSerialized, pOpts)
}

// DecodeClaims parses the compact token and returns its claims payload.
// The signature is not verified and only "alg" is required of the headers: unlike Parse, any
// "typ" and "cty" are accepted.
func DecodeClaims(jwtSerialized string) (map[string]interface{}, error) {
	if !IsCompact(jwtSerialized) {
		return nil, errors.New("JWT of compacted JWS form is supported only")
	}

	jws, err := jose.ParseJWS(jwtSerialized, &joseVerifier{proofChecker: claimsOnlyChecker{}})
	if err != nil {
		return nil, fmt.Errorf("parse JWT from compact JWS: %w", err)
	}

	claims, err := PayloadToMap(jws.Payload)
	if err != nil {
		return nil, fmt.Errorf("read JWT claims from JWS payload: %w", err)
	}

	return claims, nil
}

// Serialize makes (compact) serialization of token.
func (j *JSONWebToken) Serialize(detached bool) (string, error) {
	if j.jws == nil {
		return "", errors.New("JWS serialization is supported only")
	}

	return j.jws.SerializeCompact(detached)
}

func parseJWS(jwtSerialized string, opts *parseOpts) (*JSONWebToken, error) {
	jws, err := jose.ParseJWS(jwtSerialized, &joseVerifier{proofChecker: opts.proofChecker})
	if err != nil {
		return nil, fmt.Errorf("parse JWT from compact JWS: %w", err)
	}

	return mapJWSToJWT(jws)
}

func mapJWSToJWT(jws *jose.JSONWebSignature) (*JSONWebToken, error) {
	headers := jws.ProtectedHeaders

	err := CheckHeaders(headers)
	if err != nil {
		return nil, fmt.Errorf("check JWT headers: %w", err)
	}

	claims, err := PayloadToMap(jws.Payload)
	if err != nil {
		return nil, fmt.Errorf("read JWT claims from JWS payload: %w", err)
	}

	return &JSONWebToken{
		Headers: headers,
		Payload: claims,
		jws:     jws,
	}, nil
}

// NewUnsecured creates new unsecured JSON Web Token based on input claims.
func NewUnsecured(claims interface{}) (*JSONWebToken, error) {
	payloadMap, err := PayloadToMap(claims)
	if err != nil {
		return nil, fmt.Errorf("unmarshallable claims: %w", err)
	}

	payloadBytes, err := json.Marshal(payloadMap)
	if err != nil {
		return nil, fmt.Errorf("marshal JWT claims: %w", err)
	}

	// JWS compact serialization uses only protected headers (https://tools.ietf.org/html/rfc7515#section-3.1).
	jws, err := jose.NewJWS(nil, nil, payloadBytes, &unsecuredJWTSigner{})
	if err != nil {
		return nil, fmt.Errorf("create JWS: %w", err)
	}

	return &JSONWebToken{
		Headers: jws.ProtectedHeaders,
		Payload: payloadMap,
		jws:     jws,
	}, nil
}

// IsCompact checks whether s looks like a compact token: three dot-separated base64url segments.
// The segments are not decoded.
func IsCompact(s string) bool {
	return compactFormat.MatchString(s)
}

// CheckHeaders checks jwt headers.
func CheckHeaders(headers map[string]interface{}) error {
	if _, ok := headers[jose.HeaderAlgorithm]; !ok {
		return errors.New("alg header is not defined")
	}

	typ, ok := headers[jose.HeaderType]
	if ok {
		if err := checkTypHeader(typ); err != nil {
			return err
		}
	}

	cty, ok := headers[jose.HeaderContentType]
	if ok && cty == TypeJWT { // https://tools.ietf.org/html/rfc7519#section-5.2
		return errors.New("nested JWT is not supported")
	}

	return nil
}

func checkTypHeader(typ interface{}) error {
	typStr, ok := typ.(string)
	if !ok {
		return errors.New("invalid typ header format")
	}

	chunks := strings.Split(typStr, "+")
	if len(chunks) > 1 {
		ending := strings.ToUpper(chunks[len(chunks)-1])
		// Explicit typing.
		// https://www.rfc-editor.org/rfc/rfc8725.html#name-use-explicit-typing
		if ending != TypeJWT && ending != TypeSDJWT {
			return errors.New("invalid typ header")
		}

		return nil
	}

	if strings.ToUpper(typStr) != TypeJWT {
		// https://www.rfc-editor.org/rfc/rfc7519#section-5.1
		return errors.New("typ is not JWT")
	}

	return nil
}

// PayloadToMap transforms interface to map. Numbers are kept as json.Number.
func PayloadToMap(i interface{}) (map[string]interface{}, error) {
	if reflect.ValueOf(i).Kind() == reflect.Map {
		if m, ok := i.(map[string]interface{}); ok {
			return m, nil
		}
	}

	var (
		b   []byte
		err error
	)

	switch cv := i.(type) {
	case []byte:
		b = cv
	case string:
		b = []byte(cv)
	default:
		b, err = json.Marshal(i)
		if err != nil {
			return nil, fmt.Errorf("marshal interface[%T]: %w", i, err)
		}
	}

	var m map[string]interface{}

	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()

	if err := d.Decode(&m); err != nil {
		return nil, fmt.Errorf("convert to map: %w", err)
	}

	return m, nil
}
