/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

// Package json holds helpers over decoded JSON objects.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mohae/deepcopy"
	"golang.org/x/exp/slices"
)

// ShallowCopyObj creates new json object with copied fields form provided object.
func ShallowCopyObj(json map[string]interface{}) map[string]interface{} {
	flds := make(map[string]interface{}, len(json))

	for k, v := range json {
		flds[k] = v
	}

	return flds
}

// DeepCopyObj creates a copy of provided object which shares no nested maps or slices with it.
func DeepCopyObj(json map[string]interface{}) map[string]interface{} {
	if json == nil {
		return nil
	}

	copied, ok := deepcopy.Copy(json).(map[string]interface{})
	if !ok {
		// deepcopy returns the same type it was given.
		return ShallowCopyObj(json)
	}

	return copied
}

// MergeObjs merges provided objects into a new one. Fields of later objects override earlier ones.
// Nil objects are skipped.
func MergeObjs(objs ...map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{})

	for _, obj := range objs {
		for k, v := range obj {
			merged[k] = v
		}
	}

	return merged
}

// CopyExcept copies all fields except fields with given names.
func CopyExcept(json map[string]interface{}, flds ...string) map[string]interface{} {
	newJSON := make(map[string]interface{}, len(json))

	for k, v := range json {
		if !slices.Contains(flds, k) {
			newJSON[k] = v
		}
	}

	return newJSON
}

// CopyNonEmpty copies all fields except those with nil or empty string values.
func CopyNonEmpty(json map[string]interface{}) map[string]interface{} {
	newJSON := make(map[string]interface{}, len(json))

	for k, v := range json {
		if v == nil || v == "" {
			continue
		}

		newJSON[k] = v
	}

	return newJSON
}

// Decode decodes a single JSON value from data. Numbers are decoded as json.Number.
func Decode(data []byte) (interface{}, error) {
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()

	var v interface{}

	if err := d.Decode(&v); err != nil {
		return nil, err
	}

	if d.More() {
		return nil, errors.New("unexpected data after top-level value")
	}

	return v, nil
}

// ToMap convert object, string or bytes to json object represented by map.
// Numbers are decoded as json.Number.
func ToMap(v interface{}) (map[string]interface{}, error) {
	var (
		b   []byte
		err error
	)

	switch cv := v.(type) {
	case []byte:
		b = cv
	case string:
		b = []byte(cv)
	default:
		b, err = json.Marshal(v)
		if err != nil {
			return nil, err
		}
	}

	decoded, err := Decode(b)
	if err != nil {
		return nil, err
	}

	m, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("json object expected but got %T", decoded)
	}

	return m, nil
}
