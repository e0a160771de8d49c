/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/vc-normalize/jwt"
	jsonutil "github.com/trustbloc/vc-normalize/util/json"
)

const (
	issuerDID  = "did:example:76e12ec712ebc6f1c221ebfeb1f"
	subjectDID = "did:example:ebfeb1f712ebc6f1c276e12ec21"
	holderDID  = "did:example:ebfeb1f712ebc6f1c276e12ec21"
	exampleCtx = "https://www.w3.org/2018/credentials/examples/v1"
)

func newID() string {
	return "urn:uuid:" + uuid.NewString()
}

// unsecuredToken builds an unsecured JWT with the given claims.
func unsecuredToken(t *testing.T, claims JSONObject) string {
	t.Helper()

	token, err := jwt.NewUnsecured(claims)
	require.NoError(t, err)

	serialized, err := token.Serialize(false)
	require.NoError(t, err)

	return serialized
}

// signedToken builds a compact JWS with the given claims and a signature which is never checked.
func signedToken(t *testing.T, claims JSONObject) string {
	t.Helper()

	return tokenWithHeaders(t, JSONObject{"alg": "EdDSA", "typ": "JWT", "kid": issuerDID + "#key-1"}, claims)
}

func tokenWithHeaders(t *testing.T, headers, claims JSONObject) string {
	t.Helper()

	headersBytes, err := json.Marshal(headers)
	require.NoError(t, err)

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return base64.RawURLEncoding.EncodeToString(headersBytes) + "." +
		base64.RawURLEncoding.EncodeToString(payload) + "." +
		base64.RawURLEncoding.EncodeToString([]byte("signature"))
}

// snapshot returns a copy to compare the input with after a call.
func snapshot(obj JSONObject) JSONObject {
	return jsonutil.DeepCopyObj(obj)
}

func canonicalCredential(id string) JSONObject {
	return JSONObject{
		"@context": []interface{}{ContextURI, exampleCtx},
		"type":     []interface{}{VCType, "UniversityDegreeCredential"},
		"id":       id,
		"credentialSubject": JSONObject{
			"id": subjectDID,
			"degree": JSONObject{
				"type": "BachelorDegree",
				"name": "Bachelor of Science and Arts",
			},
		},
		"issuer":         JSONObject{"id": issuerDID, "name": "Example University"},
		"issuanceDate":   "2010-01-01T19:23:24.000Z",
		"expirationDate": "2030-01-01T19:23:24.000Z",
		"proof":          JSONObject{},
	}
}
