/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"github.com/trustbloc/vc-normalize/util/timeutil"

	jsonutil "github.com/trustbloc/vc-normalize/util/json"
)

// claimsMerger brings a document in the claims form (with "vc" or "vp" envelope) to the document form.
// Every step reads the input snapshot and the envelope only and writes to the result, so steps
// do not depend on each other's order.
type claimsMerger struct {
	// in is a private snapshot of the input. It is never modified.
	in JSONObject
	// env is the envelope of the input, nil when the input has none or it is not an object.
	env      JSONObject
	envField string

	result JSONObject
	// envRest collects what is left of the envelope.
	envRest JSONObject

	keepOriginalFields bool
}

func newClaimsMerger(in JSONObject, envField string, opts *options) *claimsMerger {
	env, _ := objectValue(in[envField])

	return &claimsMerger{
		in:                 in,
		env:                env,
		envField:           envField,
		result:             jsonutil.ShallowCopyObj(in),
		envRest:            jsonutil.ShallowCopyObj(env),
		keepOriginalFields: opts.keepOriginalFields,
	}
}

// consume removes a source field which has been converted into its document form counterpart.
func (m *claimsMerger) consume(fld string) {
	if !m.keepOriginalFields {
		delete(m.result, fld)
	}
}

// consumeEnvelope removes a member of the envelope which has been moved to the top level.
func (m *claimsMerger) consumeEnvelope(fld string) {
	if !m.keepOriginalFields {
		delete(m.envRest, fld)
	}
}

// id sets "id" from "jti".
func (m *claimsMerger) id() {
	if isSet(m.in[jsonFldID]) || !isSet(m.in[jwtFldID]) {
		return
	}

	m.result[jsonFldID] = m.in[jwtFldID]
	m.consume(jwtFldID)
}

// types unites local and envelope types.
func (m *claimsMerger) types() {
	m.result[jsonFldType] = union(asArray(m.in[jsonFldType]), asArray(m.env[jsonFldType]))
	m.consumeEnvelope(jsonFldType)
}

// contexts unites "context", "@context" and the envelope "@context" in this order.
func (m *claimsMerger) contexts() {
	m.result[jsonFldContext] = union(
		asArray(m.in[jsonFldContextAlias]),
		asArray(m.in[jsonFldContext]),
		asArray(m.env[jsonFldContext]),
	)

	m.consume(jsonFldContextAlias)
	m.consumeEnvelope(jsonFldContext)
}

// issuanceDate derives "issuanceDate" from "nbf", or from "iat" when "nbf" is not set.
func (m *claimsMerger) issuanceDate() {
	if isSet(m.in[jsonFldIssued]) {
		return
	}

	src := jwtFldNotBefore
	if !isSet(m.in[src]) {
		src = jwtFldIssuedAt
	}

	m.dateFromClaim(src, jsonFldIssued)
}

// expirationDate derives "expirationDate" from "exp".
func (m *claimsMerger) expirationDate() {
	if isSet(m.in[jsonFldExpired]) {
		return
	}

	m.dateFromClaim(jwtFldExpiry, jsonFldExpired)
}

func (m *claimsMerger) dateFromClaim(claim, fld string) {
	if !isSet(m.in[claim]) {
		return
	}

	date, err := timeutil.FormatNumericDate(m.in[claim])
	if err != nil {
		logger.Debugf("%s is not derived from %s claim: %v", fld, claim, err)

		return
	}

	m.result[fld] = date
	m.consume(claim)
}

// finish puts the rest of the envelope back, or drops the envelope when nothing is left in it.
func (m *claimsMerger) finish() JSONObject {
	if m.env == nil || m.keepOriginalFields {
		return m.result
	}

	if len(m.envRest) == 0 {
		delete(m.result, m.envField)
	} else {
		m.result[m.envField] = m.envRest
	}

	return m.result
}
