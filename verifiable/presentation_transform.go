/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	jsonutil "github.com/trustbloc/vc-normalize/util/json"
)

// TransformPresentationInput brings a Verifiable Presentation in the document form (or partially in the
// claims form) to the claims of a JWT with a "vp" claim.
//
// Credentials carrying a JWT in proof.jwt are replaced with the token, others are kept as they are.
// As in TransformCredentialInput, "jti", "nbf", "exp" and "iss" are derived only when the input has
// no such field.
func TransformPresentationInput(input JSONObject, opts ...Opt) JSONObject {
	in := jsonutil.DeepCopyObj(input)
	if in == nil {
		in = JSONObject{}
	}

	s := &presentationClaimsSplitter{claimsSplitter: newClaimsSplitter(in, jwtFldVP, getOpts(opts))}

	s.contexts()
	s.types()
	s.id()
	s.issuanceDate()
	s.expirationDate()
	s.credentials()
	s.party(jsonFldHolder)
	s.audience()

	return s.finish()
}

type presentationClaimsSplitter struct {
	*claimsSplitter
}

// credentials unites local and envelope credentials into the envelope, in their compact form when they have one.
func (s *presentationClaimsSplitter) credentials() {
	creds := concat(asArray(s.in[jsonFldCredential]), asArray(s.env[jsonFldCredential]))

	for i, cred := range creds {
		obj, isObj := objectValue(cred)
		if !isObj {
			continue
		}

		if token, ok := embeddedJWT(obj); ok {
			creds[i] = token
		}
	}

	s.envOut[jsonFldCredential] = creds
	s.consume(jsonFldCredential)
}

// audience converts "verifier" to "aud", appending it to the "aud" of the input.
func (s *presentationClaimsSplitter) audience() {
	if !isSet(s.in[jsonFldVerifier]) {
		return
	}

	s.result[jwtFldAudience] = concat(asArray(s.in[jsonFldVerifier]), asArray(s.in[jwtFldAudience]))
	s.consume(jsonFldVerifier)
}
