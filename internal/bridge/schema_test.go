package bridge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestSchema(t *testing.T) {
	data, err := RequestSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "schema should have properties")
	assert.Contains(t, properties, "command")
	assert.Contains(t, properties, "args")
	assert.Contains(t, properties, "workingDirectory")

	required, ok := schema["required"].([]any)
	require.True(t, ok, "schema should list required fields")
	assert.Contains(t, required, "command")
	assert.NotContains(t, required, "workingDirectory")
}

func TestResponseSchema(t *testing.T) {
	data, err := ResponseSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, properties, "combinedOutput")
	assert.Contains(t, properties, "exitCode")
}
