/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformCredentialInput(t *testing.T) {
	t.Run("document form to claims", func(t *testing.T) {
		id := newID()

		claims, err := TransformCredentialInput(canonicalCredential(id))
		require.NoError(t, err)
		require.Equal(t, JSONObject{
			"sub":    subjectDID,
			"jti":    id,
			"iss":    issuerDID,
			"nbf":    int64(1262373804),
			"exp":    int64(1893525804),
			"issuer": JSONObject{"name": "Example University"},
			"proof":  JSONObject{},
			"vc": JSONObject{
				"@context": []interface{}{ContextURI, exampleCtx},
				"type":     []interface{}{VCType, "UniversityDegreeCredential"},
				"credentialSubject": JSONObject{
					"degree": JSONObject{
						"type": "BachelorDegree",
						"name": "Bachelor of Science and Arts",
					},
				},
			},
		}, claims)
	})

	t.Run("explicit nil claim is not derived", func(t *testing.T) {
		claims, err := TransformCredentialInput(JSONObject{
			"nbf":          nil,
			"issuanceDate": "2010-01-01T19:23:24Z",
		})
		require.NoError(t, err)
		require.Contains(t, claims, "nbf")
		require.Nil(t, claims["nbf"])
		require.Equal(t, "2010-01-01T19:23:24Z", claims["issuanceDate"])
	})

	t.Run("explicit nil jti, exp, iss and sub", func(t *testing.T) {
		claims, err := TransformCredentialInput(JSONObject{
			"jti":               nil,
			"exp":               nil,
			"iss":               nil,
			"sub":               nil,
			"id":                "urn:uuid:1",
			"expirationDate":    "2030-01-01T00:00:00Z",
			"issuer":            issuerDID,
			"credentialSubject": JSONObject{"id": subjectDID},
		})
		require.NoError(t, err)
		require.Equal(t, "urn:uuid:1", claims["id"])
		require.Equal(t, "2030-01-01T00:00:00Z", claims["expirationDate"])
		require.Equal(t, issuerDID, claims["issuer"])
		require.Nil(t, claims["jti"])
		require.Nil(t, claims["exp"])
		require.Nil(t, claims["iss"])
		require.Nil(t, claims["sub"])
		require.Equal(t, JSONObject{"id": subjectDID}, claims["vc"].(JSONObject)["credentialSubject"]) //nolint:forcetypeassert
	})

	t.Run("unparsable date is left as is", func(t *testing.T) {
		claims, err := TransformCredentialInput(JSONObject{"issuanceDate": "yesterday"})
		require.NoError(t, err)
		require.Equal(t, "yesterday", claims["issuanceDate"])
		require.NotContains(t, claims, "nbf")
	})

	t.Run("date without zone and date only", func(t *testing.T) {
		claims, err := TransformCredentialInput(JSONObject{
			"issuanceDate":   "2009-02-13T23:31:30.999",
			"expirationDate": "2030-01-01",
		})
		require.NoError(t, err)
		require.Equal(t, int64(1234567890), claims["nbf"])
		require.Equal(t, int64(1893456000), claims["exp"])
	})

	t.Run("string issuer", func(t *testing.T) {
		claims, err := TransformCredentialInput(JSONObject{"issuer": issuerDID})
		require.NoError(t, err)
		require.Equal(t, issuerDID, claims["iss"])
		require.NotContains(t, claims, "issuer")
	})

	t.Run("issuer object with id only is dropped", func(t *testing.T) {
		claims, err := TransformCredentialInput(JSONObject{"issuer": JSONObject{"id": issuerDID}})
		require.NoError(t, err)
		require.Equal(t, issuerDID, claims["iss"])
		require.NotContains(t, claims, "issuer")
	})

	t.Run("issuer of other type is left as is", func(t *testing.T) {
		claims, err := TransformCredentialInput(JSONObject{"issuer": 42})
		require.NoError(t, err)
		require.Equal(t, 42, claims["issuer"])
		require.NotContains(t, claims, "iss")
	})

	t.Run("existing claims win", func(t *testing.T) {
		claims, err := TransformCredentialInput(JSONObject{
			"sub":               "did:example:other",
			"jti":               "urn:uuid:2",
			"iss":               "did:example:issuer2",
			"id":                "urn:uuid:1",
			"issuer":            issuerDID,
			"credentialSubject": JSONObject{"id": subjectDID},
		})
		require.NoError(t, err)
		require.Equal(t, "did:example:other", claims["sub"])
		require.Equal(t, "urn:uuid:2", claims["jti"])
		require.Equal(t, "did:example:issuer2", claims["iss"])
		require.Equal(t, "urn:uuid:1", claims["id"])
		require.Equal(t, issuerDID, claims["issuer"])
		require.Equal(t, JSONObject{"id": subjectDID}, claims["vc"].(JSONObject)["credentialSubject"]) //nolint:forcetypeassert
	})

	t.Run("nested subject and envelope are merged", func(t *testing.T) {
		claims, err := TransformCredentialInput(JSONObject{
			"context":           exampleCtx,
			"@context":          ContextURI,
			"type":              VCType,
			"credentialSubject": JSONObject{"foo": "bar", "id": subjectDID},
			"vc": JSONObject{
				"@context":          []interface{}{ContextURI, exampleCtx},
				"type":              []interface{}{VCType, "Custom"},
				"credentialSubject": JSONObject{"foo": "baz"},
				"extra":             true,
			},
		})
		require.NoError(t, err)
		require.Equal(t, subjectDID, claims["sub"])
		require.Equal(t, JSONObject{
			"@context":          []interface{}{exampleCtx, ContextURI},
			"type":              []interface{}{VCType, "Custom"},
			"credentialSubject": JSONObject{"foo": "baz"},
			"extra":             true,
		}, claims["vc"])
		require.NotContains(t, claims, "context")
		require.NotContains(t, claims, "@context")
		require.NotContains(t, claims, "type")
		require.NotContains(t, claims, "credentialSubject")
	})

	t.Run("hoisted properties go to envelope", func(t *testing.T) {
		schema := JSONObject{"id": "https://example.com/schema.json", "type": "JsonSchema"}

		claims, err := TransformCredentialInput(JSONObject{
			"credentialSchema": schema,
			"refreshService":   JSONObject{"type": "ManualRefreshService2018"},
			"vc": JSONObject{
				"refreshService": JSONObject{"type": "AutoRefresh"},
			},
		})
		require.NoError(t, err)

		vc := claims["vc"].(JSONObject) //nolint:forcetypeassert
		require.Equal(t, schema, vc["credentialSchema"])
		require.Equal(t, JSONObject{"type": "AutoRefresh"}, vc["refreshService"])
		require.Equal(t, JSONObject{"type": "ManualRefreshService2018"}, claims["refreshService"])
		require.NotContains(t, claims, "credentialSchema")
	})

	t.Run("original fields are kept", func(t *testing.T) {
		id := newID()

		claims, err := TransformCredentialInput(canonicalCredential(id), WithOriginalFields())
		require.NoError(t, err)
		require.Equal(t, id, claims["jti"])
		require.Equal(t, id, claims["id"])
		require.Equal(t, subjectDID, claims["sub"])
		require.Equal(t, issuerDID, claims["iss"])
		require.Equal(t, JSONObject{"id": issuerDID, "name": "Example University"}, claims["issuer"])
		require.Equal(t, "2010-01-01T19:23:24.000Z", claims["issuanceDate"])
		require.Equal(t, int64(1262373804), claims["nbf"])
		require.Contains(t, claims, "credentialSubject")

		vc := claims["vc"].(JSONObject) //nolint:forcetypeassert
		require.Equal(t, subjectDID, vc["credentialSubject"].(JSONObject)["id"]) //nolint:forcetypeassert
	})

	t.Run("array of subjects", func(t *testing.T) {
		for _, input := range []JSONObject{
			{"credentialSubject": []interface{}{JSONObject{"id": "a"}}},
			{"vc": JSONObject{"credentialSubject": []interface{}{JSONObject{"id": "a"}, JSONObject{"id": "b"}}}},
		} {
			claims, err := TransformCredentialInput(input)
			require.Error(t, err)
			require.Nil(t, claims)

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			require.Equal(t, "credentialSubject", shapeErr.Field)
		}
	})

	t.Run("nil input", func(t *testing.T) {
		claims, err := TransformCredentialInput(nil)
		require.NoError(t, err)
		require.Equal(t, JSONObject{
			"vc": JSONObject{
				"@context":          []interface{}{},
				"type":              []interface{}{},
				"credentialSubject": JSONObject{},
			},
		}, claims)
	})

	t.Run("input is not modified", func(t *testing.T) {
		input := canonicalCredential(newID())
		input["vc"] = JSONObject{"credentialSubject": JSONObject{"extra": "value"}}
		before := snapshot(input)

		claims, err := TransformCredentialInput(input)
		require.NoError(t, err)
		require.Equal(t, before, input)

		claims["vc"].(JSONObject)["credentialSubject"].(JSONObject)["extra"] = "changed" //nolint:forcetypeassert
		require.Equal(t, before, input)
	})
}

func TestCredentialRoundTrip(t *testing.T) {
	t.Run("through claims", func(t *testing.T) {
		canonical := canonicalCredential(newID())

		claims, err := TransformCredentialInput(canonical)
		require.NoError(t, err)

		vc, err := NormalizeCredential(claims)
		require.NoError(t, err)
		require.Equal(t, canonical, vc)
	})

	t.Run("through unsecured token", func(t *testing.T) {
		canonical := canonicalCredential(newID())
		delete(canonical, "proof")

		claims, err := TransformCredentialInput(canonical)
		require.NoError(t, err)

		token := unsecuredToken(t, claims)

		vc, err := NormalizeCredential(token)
		require.NoError(t, err)
		require.Equal(t, JSONObject{"type": JWTProofType, "jwt": token}, vc["proof"])

		delete(vc, "proof")
		require.Equal(t, canonical, vc)
	})
}
