/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package verifiable reconciles the two encodings of Verifiable Credentials and Presentations
// (https://www.w3.org/TR/vc-data-model): the JSON-LD document form and the JWT claims form
// (https://www.w3.org/TR/vc-data-model/#jwt-encoding).
//
// NormalizeCredential and NormalizePresentation accept either form, as a compact token, JSON text or
// decoded object, and return the canonical document form. TransformCredentialInput and
// TransformPresentationInput go the other way and produce the claim set of a token, ready to be signed.
// All functions are pure: inputs are never modified and results share no nested values with them.
package verifiable

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/samber/lo"
)

var logger = log.New("vc-normalize/verifiable")

// JSONObject is a decoded JSON object.
type JSONObject = map[string]interface{}

// Proof defines embedded proof of Verifiable Credential.
type Proof map[string]interface{}

// CustomFields is a map of extra fields of struct build when unmarshalling JSON which are not
// mapped to the struct fields.
type CustomFields map[string]interface{}

const (
	// JWTProofType is the type of proof attached to a document decoded from a compact token.
	JWTProofType = "JwtProof2020"

	// ContextURI is the base context of Verifiable Credentials and Presentations.
	ContextURI = "https://www.w3.org/2018/credentials/v1"

	// VCType is the base type of Verifiable Credential.
	VCType = "VerifiableCredential"

	// VPType is the base type of Verifiable Presentation.
	VPType = "VerifiablePresentation"
)

// Document form fields.
const (
	jsonFldContext      = "@context"
	jsonFldContextAlias = "context"
	jsonFldType         = "type"
	jsonFldID           = "id"
	jsonFldSubject      = "credentialSubject"
	jsonFldIssuer       = "issuer"
	jsonFldIssued       = "issuanceDate"
	jsonFldExpired      = "expirationDate"
	jsonFldProof        = "proof"
	jsonFldProofJWT     = "jwt"
	jsonFldProofType    = "type"
	jsonFldHolder       = "holder"
	jsonFldVerifier     = "verifier"
	jsonFldCredential   = "verifiableCredential"
)

// Claims form fields.
const (
	jwtFldSubject   = "sub"
	jwtFldIssuer    = "iss"
	jwtFldID        = "jti"
	jwtFldNotBefore = "nbf"
	jwtFldIssuedAt  = "iat"
	jwtFldExpiry    = "exp"
	jwtFldAudience  = "aud"
	jwtFldVC        = "vc"
	jwtFldVP        = "vp"
)

// hoistedFlds are credential properties of the data model which have no claim of their own
// and travel inside the "vc" claim.
var hoistedFlds = []string{ //nolint:gochecknoglobals
	"evidence",
	"credentialSchema",
	"credentialStatus",
	"termsOfUse",
	"refreshService",
}

// isSet reports whether v holds a value. Nil, empty string, false and numeric zero do not.
func isSet(v interface{}) bool {
	if v == nil {
		return false
	}

	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()

		return err != nil || f != 0
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.String:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()

		return f != 0 && !math.IsNaN(f)
	case reflect.Map, reflect.Slice, reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

// hasField reports whether obj has a field with the given name, even if its value is nil.
func hasField(obj JSONObject, fld string) bool {
	_, ok := obj[fld]

	return ok
}

// objectValue returns v as a JSON object.
func objectValue(v interface{}) (JSONObject, bool) {
	switch obj := v.(type) {
	case map[string]interface{}:
		return obj, obj != nil
	case Proof:
		return JSONObject(obj), obj != nil
	case CustomFields:
		return JSONObject(obj), obj != nil
	default:
		return nil, false
	}
}

// asArray returns v as a list of values: nil gives no values, a slice gives its elements
// and any other value is a list of one.
func asArray(v interface{}) []interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case []interface{}:
		return val
	case []string:
		return lo.Map(val, func(s string, _ int) interface{} { return s })
	case []byte, json.RawMessage:
		return []interface{}{val}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []interface{}{v}
	}

	values := make([]interface{}, rv.Len())

	for i := range values {
		values[i] = rv.Index(i).Interface()
	}

	return values
}

// isArray reports whether v is a list of values.
func isArray(v interface{}) bool {
	switch v.(type) {
	case nil, []byte, json.RawMessage:
		return false
	}

	kind := reflect.ValueOf(v).Kind()

	return kind == reflect.Slice || kind == reflect.Array
}

// concat joins the lists dropping nil values. The result is never nil.
func concat(lists ...[]interface{}) []interface{} {
	return lo.Filter(lo.Flatten(lists), func(v interface{}, _ int) bool {
		return v != nil
	})
}

// union joins the lists dropping nil values and repeated scalar values, keeping the first occurrence.
// Objects and other incomparable values are always kept.
func union(lists ...[]interface{}) []interface{} {
	seen := make(map[interface{}]struct{})

	return lo.Filter(concat(lists...), func(v interface{}, _ int) bool {
		if !reflect.ValueOf(v).Comparable() {
			return true
		}

		if _, ok := seen[v]; ok {
			return false
		}

		seen[v] = struct{}{}

		return true
	})
}

// embeddedJWT returns the compact token of proof.jwt of the object.
func embeddedJWT(obj JSONObject) (string, bool) {
	proof, ok := objectValue(obj[jsonFldProof])
	if !ok {
		return "", false
	}

	token, ok := proof[jsonFldProofJWT].(string)

	return token, ok && token != ""
}
