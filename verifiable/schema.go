/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const baseContextSchema = `{
  "oneOf": [
    {
      "type": "string",
      "const": "https://www.w3.org/2018/credentials/v1"
    },
    {
      "type": "array",
      "items": [
        {
          "type": "string",
          "const": "https://www.w3.org/2018/credentials/v1"
        }
      ],
      "uniqueItems": true,
      "additionalItems": {
        "oneOf": [
          {
            "type": "object"
          },
          {
            "type": "string"
          }
        ]
      }
    }
  ]
}`

// credentialSchema is the data model constraints of a credential in the canonical document form.
const credentialSchema = `{
  "required": [
    "@context",
    "type",
    "credentialSubject",
    "issuer",
    "issuanceDate"
  ],
  "properties": {
    "@context": ` + baseContextSchema + `,
    "id": {
      "type": "string"
    },
    "type": {
      "oneOf": [
        {
          "type": "array",
          "minItems": 1,
          "contains": {
            "type": "string",
            "pattern": "^VerifiableCredential$"
          }
        },
        {
          "type": "string",
          "pattern": "^VerifiableCredential$"
        }
      ]
    },
    "credentialSubject": {
      "type": "object"
    },
    "issuer": {
      "anyOf": [
        {
          "type": "string",
          "minLength": 1
        },
        {
          "type": "object",
          "required": [
            "id"
          ],
          "properties": {
            "id": {
              "type": "string",
              "minLength": 1
            }
          }
        }
      ]
    },
    "issuanceDate": {
      "type": "string",
      "format": "date-time"
    },
    "expirationDate": {
      "type": "string",
      "format": "date-time"
    },
    "proof": {
      "type": "object"
    }
  }
}`

// presentationSchema is the data model constraints of a presentation in the canonical document form.
const presentationSchema = `{
  "required": [
    "@context",
    "type"
  ],
  "properties": {
    "@context": ` + baseContextSchema + `,
    "id": {
      "type": "string"
    },
    "type": {
      "oneOf": [
        {
          "type": "array",
          "minItems": 1,
          "contains": {
            "type": "string",
            "pattern": "^VerifiablePresentation$"
          }
        },
        {
          "type": "string",
          "pattern": "^VerifiablePresentation$"
        }
      ]
    },
    "verifiableCredential": {
      "type": "array"
    },
    "holder": {
      "anyOf": [
        {
          "type": "string"
        },
        {
          "type": "object"
        }
      ]
    },
    "verifier": {
      "type": "array",
      "items": {
        "type": "string"
      }
    },
    "issuanceDate": {
      "type": "string",
      "format": "date-time"
    },
    "expirationDate": {
      "type": "string",
      "format": "date-time"
    },
    "proof": {
      "type": "object"
    }
  }
}`

//nolint:gochecknoglobals
var (
	credentialSchemaLoader   = gojsonschema.NewStringLoader(credentialSchema)
	presentationSchemaLoader = gojsonschema.NewStringLoader(presentationSchema)
)

// ValidateCredential checks that a credential in the canonical document form, as returned by
// NormalizeCredential, conforms to the data model. The returned error matches ErrInvalidDocument
// and lists every violation.
func ValidateCredential(vc JSONObject) error {
	return validateDocument(credentialSchemaLoader, vc, "verifiable credential")
}

// ValidatePresentation checks that a presentation in the canonical document form, as returned by
// NormalizePresentation, conforms to the data model. Embedded credentials in the document form are
// validated as well.
func ValidatePresentation(vp JSONObject) error {
	if err := validateDocument(presentationSchemaLoader, vp, "verifiable presentation"); err != nil {
		return err
	}

	for i, cred := range asArray(vp[jsonFldCredential]) {
		vc, isObj := objectValue(cred)
		if !isObj {
			// Compact credentials are left for their own validation.
			continue
		}

		if err := ValidateCredential(vc); err != nil {
			return fmt.Errorf("verifiableCredential[%d]: %w", i, err)
		}
	}

	return nil
}

func validateDocument(schemaLoader gojsonschema.JSONLoader, doc JSONObject, what string) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validation of %s: %w", what, err)
	}

	if !result.Valid() {
		return errors.Join(ErrInvalidDocument, errors.New(describeSchemaValidationError(result, what)))
	}

	return nil
}

func describeSchemaValidationError(result *gojsonschema.Result, what string) string {
	errMsg := what + " is not valid:\n"
	for _, desc := range result.Errors() {
		errMsg += fmt.Sprintf("- %s\n", desc)
	}

	return errMsg
}
