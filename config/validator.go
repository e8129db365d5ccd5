package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/RobertoRoos/custom-containers/errors"
)

// manifestSchema is the JSON Schema every manifest must satisfy before
// decoding. Semantic rules (unique names) live in Config.Validate.
const manifestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Container manifest",
	"type": "object",
	"required": ["containers"],
	"additionalProperties": false,
	"properties": {
		"containers": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "kind", "capacity"],
				"additionalProperties": false,
				"properties": {
					"name": {
						"type": "string",
						"minLength": 1
					},
					"kind": {
						"type": "string",
						"enum": ["fifo", "bounded"]
					},
					"capacity": {
						"type": "integer",
						"minimum": 1
					},
					"metrics": {
						"type": "boolean"
					}
				}
			}
		}
	}
}`

// validateSchema checks a raw YAML manifest against the manifest schema.
// The YAML is decoded generically and re-encoded as JSON because the
// schema validator operates on JSON documents.
func validateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.WrapInvalid(err, "Config", "validateSchema", "decode YAML manifest")
	}

	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return errors.WrapInvalid(err, "Config", "validateSchema", "convert manifest to JSON")
	}

	schemaLoader := gojsonschema.NewStringLoader(manifestSchema)
	documentLoader := gojsonschema.NewBytesLoader(jsonBytes)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.WrapFatal(err, "Config", "validateSchema", "run schema validation")
	}

	if !result.Valid() {
		descriptions := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			descriptions = append(descriptions, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "validateSchema",
			strings.Join(descriptions, "; "))
	}

	return nil
}
