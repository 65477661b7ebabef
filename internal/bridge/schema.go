package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// RequestSchema returns the JSON Schema of Request for host integrations.
func RequestSchema() ([]byte, error) {
	return generateSchema(&Request{})
}

// ResponseSchema returns the JSON Schema of Response.
func ResponseSchema() ([]byte, error) {
	return generateSchema(&Response{})
}

func generateSchema(v any) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}
