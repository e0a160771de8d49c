/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"fmt"

	jsonutil "github.com/trustbloc/vc-normalize/util/json"
)

// NormalizeCredential brings a Verifiable Credential to the canonical document form.
//
// The input may be a compact JWT, JSON text, an object in the claims or document form (or a mix of both),
// or an object carrying a JWT in proof.jwt. A credential decoded from a JWT gets a JwtProof2020 proof
// holding the token; otherwise the proof of the input is kept. An error matching ErrUnknownFormat is
// returned when the input cannot be decoded.
func NormalizeCredential(input interface{}, opts ...Opt) (JSONObject, error) {
	vc, err := normalizeCredential(input, getOpts(opts))
	if err != nil {
		return nil, fmt.Errorf("normalize credential: %w", err)
	}

	return vc, nil
}

func normalizeCredential(v interface{}, opts *options) (JSONObject, error) {
	in, err := classifyInput(v)
	if err != nil {
		return nil, err
	}

	switch in.kind {
	case inputJWT:
		claims, err := decodeClaims(in.token, opts)
		if err != nil {
			return nil, err
		}

		vc := mergeCredentialClaims(claims, opts)
		vc[jsonFldProof] = jwtProof(in.token, opts)

		return vc, nil

	case inputJSONText:
		parsed, err := parseJSONText(in.text)
		if err != nil {
			return nil, err
		}

		return normalizeCredential(parsed, opts)

	case inputJWTProof:
		vc, err := normalizeCredential(in.token, opts)
		if err != nil {
			return nil, err
		}

		vc[jsonFldProof] = in.obj[jsonFldProof]

		return vc, nil

	default:
		vc := mergeCredentialClaims(in.obj, opts)
		vc[jsonFldProof] = ownProof(in.obj)

		return vc, nil
	}
}

func mergeCredentialClaims(claims JSONObject, opts *options) JSONObject {
	m := &credentialClaimsMerger{claimsMerger: newClaimsMerger(claims, jwtFldVC, opts)}

	m.subject()
	m.issuer()
	m.id()
	m.types()
	m.hoisted()
	m.contexts()
	m.issuanceDate()
	m.expirationDate()

	return m.finish()
}

type credentialClaimsMerger struct {
	*claimsMerger
}

// subject merges local and envelope subjects (envelope wins) and takes its id from "sub".
// A subject which is not an object is left as is.
func (m *credentialClaimsMerger) subject() {
	local, isObj := objectValue(m.in[jsonFldSubject])
	if m.in[jsonFldSubject] != nil && !isObj {
		return
	}

	nested, nestedIsObj := objectValue(m.env[jsonFldSubject])

	subject := jsonutil.MergeObjs(local, nested)

	if isSet(m.in[jwtFldSubject]) && !isSet(subject[jsonFldID]) {
		subject[jsonFldID] = m.in[jwtFldSubject]
		m.consume(jwtFldSubject)
	}

	m.result[jsonFldSubject] = subject

	if nestedIsObj {
		m.consumeEnvelope(jsonFldSubject)
	}
}

// issuer builds issuer object from "iss" and the issuer object of the input.
// The issuer object's own id wins over "iss"; a string issuer is left as is.
// No issuer is added to a credential which has neither of them.
func (m *credentialClaimsMerger) issuer() {
	issuerObj, isObj := objectValue(m.in[jsonFldIssuer])
	if m.in[jsonFldIssuer] != nil && !isObj {
		return
	}

	issuer := jsonutil.CopyNonEmpty(jsonutil.MergeObjs(
		JSONObject{jsonFldID: m.in[jwtFldIssuer]},
		jsonutil.CopyNonEmpty(issuerObj),
	))

	if len(issuer) == 0 && !hasField(m.in, jsonFldIssuer) {
		return
	}

	m.result[jsonFldIssuer] = issuer

	if isSet(m.in[jwtFldIssuer]) && !isSet(issuerObj[jsonFldID]) {
		m.consume(jwtFldIssuer)
	}
}

// hoisted moves data model properties without a claim of their own out of the envelope.
// A property set at the top level too stays in the envelope.
func (m *credentialClaimsMerger) hoisted() {
	for _, fld := range hoistedFlds {
		if !isSet(m.env[fld]) || isSet(m.in[fld]) {
			continue
		}

		m.result[fld] = m.env[fld]
		m.consumeEnvelope(fld)
	}
}
