/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"github.com/trustbloc/vc-normalize/util/timeutil"

	jsonutil "github.com/trustbloc/vc-normalize/util/json"
)

// claimsSplitter brings a document in the document form to the claims form: fields with a claim of their
// own are converted to it, the rest goes to the "vc" or "vp" envelope.
//
// A claim which is a field of the input, even with nil value, is never derived. This lets a caller
// suppress a claim by setting it to nil explicitly.
type claimsSplitter struct {
	// in is a private snapshot of the input. It is never modified.
	in JSONObject
	// env is the envelope of the input, nil when the input has none or it is not an object.
	env      JSONObject
	envField string

	result JSONObject
	envOut JSONObject

	keepOriginalFields bool
}

func newClaimsSplitter(in JSONObject, envField string, opts *options) *claimsSplitter {
	env, isObj := objectValue(in[envField])
	if !isObj && in[envField] != nil {
		logger.Debugf("%s field of %T type is not an object and is replaced", envField, in[envField])
	}

	return &claimsSplitter{
		in:                 in,
		env:                env,
		envField:           envField,
		result:             jsonutil.ShallowCopyObj(in),
		envOut:             jsonutil.ShallowCopyObj(env),
		keepOriginalFields: opts.keepOriginalFields,
	}
}

// consume removes a document field which has been converted into a claim or moved to the envelope.
func (s *claimsSplitter) consume(fld string) {
	if !s.keepOriginalFields {
		delete(s.result, fld)
	}
}

// contexts unites "context", "@context" and the envelope "@context" into the envelope.
func (s *claimsSplitter) contexts() {
	s.envOut[jsonFldContext] = union(
		asArray(s.in[jsonFldContextAlias]),
		asArray(s.in[jsonFldContext]),
		asArray(s.env[jsonFldContext]),
	)

	s.consume(jsonFldContextAlias)
	s.consume(jsonFldContext)
}

// types unites local and envelope types into the envelope.
func (s *claimsSplitter) types() {
	s.envOut[jsonFldType] = union(asArray(s.in[jsonFldType]), asArray(s.env[jsonFldType]))
	s.consume(jsonFldType)
}

// id converts "id" to "jti".
func (s *claimsSplitter) id() {
	if !isSet(s.in[jsonFldID]) || hasField(s.in, jwtFldID) {
		return
	}

	s.result[jwtFldID] = s.in[jsonFldID]
	s.consume(jsonFldID)
}

// issuanceDate converts "issuanceDate" to "nbf".
func (s *claimsSplitter) issuanceDate() {
	s.dateToClaim(jsonFldIssued, jwtFldNotBefore)
}

// expirationDate converts "expirationDate" to "exp".
func (s *claimsSplitter) expirationDate() {
	s.dateToClaim(jsonFldExpired, jwtFldExpiry)
}

func (s *claimsSplitter) dateToClaim(fld, claim string) {
	if !isSet(s.in[fld]) || hasField(s.in, claim) {
		return
	}

	date, ok := s.in[fld].(string)
	if !ok {
		logger.Debugf("%s of %T type is not converted to %s claim", fld, s.in[fld], claim)

		return
	}

	secs, err := timeutil.ToNumericDate(date)
	if err != nil {
		logger.Debugf("%s is not converted to %s claim: %v", fld, claim, err)

		return
	}

	s.result[claim] = secs
	s.consume(fld)
}

// party converts "issuer" or "holder", given as a string or an object with id, to "iss".
// Other fields of the object stay under the document field.
func (s *claimsSplitter) party(fld string) {
	if !isSet(s.in[fld]) || hasField(s.in, jwtFldIssuer) {
		return
	}

	switch party := s.in[fld].(type) {
	case string:
		s.result[jwtFldIssuer] = party
		s.consume(fld)

	default:
		obj, isObj := objectValue(party)
		if !isObj || !isSet(obj[jsonFldID]) {
			return
		}

		s.result[jwtFldIssuer] = obj[jsonFldID]

		if s.keepOriginalFields {
			return
		}

		if rest := jsonutil.CopyExcept(obj, jsonFldID); len(rest) > 0 {
			s.result[fld] = rest
		} else {
			delete(s.result, fld)
		}
	}
}

func (s *claimsSplitter) finish() JSONObject {
	s.result[s.envField] = s.envOut

	return s.result
}
