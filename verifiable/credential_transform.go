/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	jsonutil "github.com/trustbloc/vc-normalize/util/json"
)

// TransformCredentialInput brings a Verifiable Credential in the document form (or partially in the claims
// form) to the claims of a JWT with a "vc" claim.
//
// Claims already present in the input are kept as they are, including those explicitly set to nil:
// "sub", "jti", "nbf", "exp" and "iss" are derived only when the input has no such field.
// A *ShapeError is returned when the credential has more than one subject.
func TransformCredentialInput(input JSONObject, opts ...Opt) (JSONObject, error) {
	in := jsonutil.DeepCopyObj(input)
	if in == nil {
		in = JSONObject{}
	}

	s := &credentialClaimsSplitter{claimsSplitter: newClaimsSplitter(in, jwtFldVC, getOpts(opts))}

	if err := s.checkSubject(); err != nil {
		return nil, err
	}

	s.subject()
	s.contexts()
	s.types()
	s.hoisted()
	s.id()
	s.issuanceDate()
	s.expirationDate()
	s.party(jsonFldIssuer)

	return s.finish(), nil
}

type credentialClaimsSplitter struct {
	*claimsSplitter
}

func (s *credentialClaimsSplitter) checkSubject() error {
	for _, subject := range []interface{}{s.in[jsonFldSubject], s.env[jsonFldSubject]} {
		if isArray(subject) {
			return &ShapeError{
				Field:  jsonFldSubject,
				Reason: "array of subjects is not supported",
			}
		}
	}

	return nil
}

// subject merges local and envelope subjects (envelope wins) into the envelope and moves its id to "sub".
// A local subject which is not an object is left as is.
func (s *credentialClaimsSplitter) subject() {
	local, isObj := objectValue(s.in[jsonFldSubject])
	if s.in[jsonFldSubject] != nil && !isObj {
		return
	}

	nested, _ := objectValue(s.env[jsonFldSubject])

	subject := jsonutil.MergeObjs(local, nested)

	if !hasField(s.in, jwtFldSubject) && isSet(subject[jsonFldID]) {
		s.result[jwtFldSubject] = subject[jsonFldID]

		if !s.keepOriginalFields {
			delete(subject, jsonFldID)
		}
	}

	s.envOut[jsonFldSubject] = subject
	s.consume(jsonFldSubject)
}

// hoisted moves data model properties without a claim of their own into the envelope.
// A property set in the envelope too stays at the top level.
func (s *credentialClaimsSplitter) hoisted() {
	for _, fld := range hoistedFlds {
		if !isSet(s.in[fld]) || isSet(s.env[fld]) {
			continue
		}

		s.envOut[fld] = s.in[fld]
		s.consume(fld)
	}
}
