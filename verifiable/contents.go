/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/trustbloc/vc-normalize/util/timeutil"
)

// Party is an issuer of a credential or a holder of a presentation.
type Party struct {
	ID string `mapstructure:"id"`

	CustomFields CustomFields `mapstructure:",remain"`
}

// Subject is a subject of a credential.
type Subject struct {
	ID string `mapstructure:"id"`

	CustomFields CustomFields `mapstructure:",remain"`
}

// CredentialContents is a typed view of a credential in the canonical document form.
type CredentialContents struct {
	Context []interface{} `mapstructure:"@context"`
	ID      string        `mapstructure:"id"`
	Types   []string      `mapstructure:"type"`
	Subject *Subject      `mapstructure:"credentialSubject"`
	Issuer  *Party        `mapstructure:"issuer"`
	Issued  *time.Time    `mapstructure:"issuanceDate"`
	Expired *time.Time    `mapstructure:"expirationDate"`
	Proof   Proof         `mapstructure:"proof"`

	CustomFields CustomFields `mapstructure:",remain"`
}

// PresentationContents is a typed view of a presentation in the canonical document form.
type PresentationContents struct {
	Context  []interface{} `mapstructure:"@context"`
	ID       string        `mapstructure:"id"`
	Types    []string      `mapstructure:"type"`
	Holder   *Party        `mapstructure:"holder"`
	Verifier []string      `mapstructure:"verifier"`
	Issued   *time.Time    `mapstructure:"issuanceDate"`
	Expired  *time.Time    `mapstructure:"expirationDate"`
	Proof    Proof         `mapstructure:"proof"`

	// Credentials holds credentials in the document form (JSONObject) or compact tokens (string).
	Credentials []interface{} `mapstructure:"verifiableCredential"`

	CustomFields CustomFields `mapstructure:",remain"`
}

// ParseCredentialContents reads the known fields of a normalized credential. Fields unknown
// to the data model go to CustomFields.
func ParseCredentialContents(vc JSONObject) (*CredentialContents, error) {
	var contents CredentialContents

	if err := decodeContents(vc, &contents); err != nil {
		return nil, fmt.Errorf("parse credential contents: %w", err)
	}

	return &contents, nil
}

// ParsePresentationContents reads the known fields of a normalized presentation.
func ParsePresentationContents(vp JSONObject) (*PresentationContents, error) {
	var contents PresentationContents

	if err := decodeContents(vp, &contents); err != nil {
		return nil, fmt.Errorf("parse presentation contents: %w", err)
	}

	return &contents, nil
}

func decodeContents(doc JSONObject, result interface{}) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: result,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToDateHook(),
			idToObjectHook(),
			valueToSliceHook(),
		),
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}

	return d.Decode(doc)
}

// stringToDateHook parses ISO-8601 dates.
func stringToDateHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		s, ok := data.(string)
		if !ok || t != reflect.TypeOf(time.Time{}) {
			return data, nil
		}

		return timeutil.ParseDate(s)
	}
}

// idToObjectHook reads a party or subject given by its id only.
func idToObjectHook() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}

		if t != reflect.TypeOf(Party{}) && t != reflect.TypeOf(Subject{}) {
			return data, nil
		}

		return map[string]interface{}{jsonFldID: data}, nil
	}
}

// valueToSliceHook reads a single value where a list is expected.
func valueToSliceHook() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Slice || f.Kind() == reflect.Slice || data == nil {
			return data, nil
		}

		return []interface{}{data}, nil
	}
}
