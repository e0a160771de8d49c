/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"fmt"
)

// NormalizePresentation brings a Verifiable Presentation to the canonical document form.
//
// Accepted inputs and the proof handling are the same as of NormalizeCredential. Every credential of
// the presentation, local or in the "vp" claim, is normalized with NormalizeCredential using the same options.
// Verifiers from "aud" are appended to the "verifier" list as they are, without removing repeated ones.
func NormalizePresentation(input interface{}, opts ...Opt) (JSONObject, error) {
	vp, err := normalizePresentation(input, getOpts(opts))
	if err != nil {
		return nil, fmt.Errorf("normalize presentation: %w", err)
	}

	return vp, nil
}

func normalizePresentation(v interface{}, opts *options) (JSONObject, error) {
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

		vp, err := mergePresentationClaims(claims, opts)
		if err != nil {
			return nil, err
		}

		vp[jsonFldProof] = jwtProof(in.token, opts)

		return vp, nil

	case inputJSONText:
		parsed, err := parseJSONText(in.text)
		if err != nil {
			return nil, err
		}

		return normalizePresentation(parsed, opts)

	case inputJWTProof:
		vp, err := normalizePresentation(in.token, opts)
		if err != nil {
			return nil, err
		}

		vp[jsonFldProof] = in.obj[jsonFldProof]

		return vp, nil

	default:
		vp, err := mergePresentationClaims(in.obj, opts)
		if err != nil {
			return nil, err
		}

		vp[jsonFldProof] = ownProof(in.obj)

		return vp, nil
	}
}

func mergePresentationClaims(claims JSONObject, opts *options) (JSONObject, error) {
	m := &presentationClaimsMerger{claimsMerger: newClaimsMerger(claims, jwtFldVP, opts), opts: opts}

	if err := m.credentials(); err != nil {
		return nil, err
	}

	m.holder()
	m.verifier()
	m.id()
	m.types()
	m.contexts()
	m.issuanceDate()
	m.expirationDate()

	return m.finish(), nil
}

type presentationClaimsMerger struct {
	*claimsMerger

	opts *options
}

// credentials normalizes local and envelope credentials. Credentials are not deduplicated.
func (m *presentationClaimsMerger) credentials() error {
	creds := concat(asArray(m.in[jsonFldCredential]), asArray(m.env[jsonFldCredential]))

	normalized := make([]interface{}, len(creds))

	for i, cred := range creds {
		vc, err := normalizeCredential(cred, m.opts)
		if err != nil {
			return fmt.Errorf("verifiableCredential[%d]: %w", i, err)
		}

		normalized[i] = vc
	}

	m.result[jsonFldCredential] = normalized
	m.consumeEnvelope(jsonFldCredential)

	return nil
}

// holder takes "holder" from "iss".
func (m *presentationClaimsMerger) holder() {
	if !isSet(m.in[jwtFldIssuer]) || isSet(m.in[jsonFldHolder]) {
		return
	}

	m.result[jsonFldHolder] = m.in[jwtFldIssuer]
	m.consume(jwtFldIssuer)
}

// verifier appends "aud" to "verifier".
func (m *presentationClaimsMerger) verifier() {
	if !isSet(m.in[jwtFldAudience]) {
		return
	}

	m.result[jsonFldVerifier] = concat(asArray(m.in[jsonFldVerifier]), asArray(m.in[jwtFldAudience]))
	m.consume(jwtFldAudience)
}
