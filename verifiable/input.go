/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"errors"
	"fmt"

	"github.com/trustbloc/vc-normalize/jwt"
	jsonutil "github.com/trustbloc/vc-normalize/util/json"
)

type inputKind int

const (
	// inputJWT is a compact token.
	inputJWT inputKind = iota
	// inputJSONText is a string which is not a compact token and is expected to hold JSON.
	inputJSONText
	// inputJWTProof is an object with a compact token in proof.jwt.
	inputJWTProof
	// inputObject is any other object.
	inputObject
)

// input is a credential or presentation classified by its shape.
type input struct {
	kind inputKind

	// token is set for inputJWT and inputJWTProof.
	token string
	// text is set for inputJSONText.
	text []byte
	// obj is a private copy of the input object, set for inputJWTProof and inputObject.
	obj JSONObject
}

func classifyInput(v interface{}) (*input, error) {
	switch val := v.(type) {
	case string:
		return classifyText([]byte(val)), nil
	case []byte:
		return classifyText(val), nil
	case nil:
		return nil, unknownFormat(errors.New("nil input"))
	}

	obj, ok := objectValue(v)
	if ok {
		obj = jsonutil.DeepCopyObj(obj)
	} else {
		var err error

		// Go values are brought to the decoded JSON form.
		obj, err = jsonutil.ToMap(v)
		if err != nil {
			return nil, unknownFormat(fmt.Errorf("input of type %T: %w", v, err))
		}
	}

	if token, ok := embeddedJWT(obj); ok {
		return &input{kind: inputJWTProof, token: token, obj: obj}, nil
	}

	return &input{kind: inputObject, obj: obj}, nil
}

func classifyText(text []byte) *input {
	if jwt.IsCompact(string(text)) {
		return &input{kind: inputJWT, token: string(text)}
	}

	return &input{kind: inputJSONText, text: text}
}

// parseJSONText decodes JSON text of a credential or presentation: an object, or a string holding one
// in any accepted form.
func parseJSONText(text []byte) (interface{}, error) {
	v, err := jsonutil.Decode(text)
	if err != nil {
		return nil, unknownFormat(fmt.Errorf("parse JSON: %w", err))
	}

	switch v.(type) {
	case string, map[string]interface{}:
		return v, nil
	default:
		return nil, unknownFormat(fmt.Errorf("JSON object or string expected but got %T", v))
	}
}

// decodeClaims decodes the claims of a compact token into a private copy.
func decodeClaims(token string, opts *options) (JSONObject, error) {
	claims, err := opts.decoder.DecodeClaims(token)
	if err != nil {
		return nil, unknownFormat(fmt.Errorf("decode JWT claims: %w", err))
	}

	return jsonutil.DeepCopyObj(claims), nil
}

func jwtProof(token string, opts *options) JSONObject {
	return JSONObject{
		jsonFldProofType: opts.proofType,
		jsonFldProofJWT:  token,
	}
}

// ownProof returns the proof of the object or an empty one.
func ownProof(obj JSONObject) interface{} {
	if proof := obj[jsonFldProof]; proof != nil {
		return proof
	}

	return JSONObject{}
}
