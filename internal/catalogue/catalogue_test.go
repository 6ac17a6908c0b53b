package catalogue

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/codex-k8s/sandbox-fs-mcp-server/configs"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/render"
)

const validCatalogue = `
server:
  name: sandbox-fs
  version: "0.1.0"
verbs:
  - name: list
    description: List directory entries.
    input_schema:
      type: object
      properties:
        path:
          type: string
  - name: read-full
    description: Read a file.
    input_schema:
      type: object
      properties:
        path:
          type: string
      required: [path]
    limits:
      rate_per_minute: 60
      max_argument_length: 512
`

func TestLoadValidCatalogue(t *testing.T) {
	cat, err := Load([]byte(validCatalogue))
	assert.NilError(t, err)
	assert.Equal(t, cat.Server.Name, "sandbox-fs")
	assert.Equal(t, cat.Server.Transport, "stdio")
	assert.Equal(t, len(cat.Verbs), 2)
	assert.Equal(t, cat.Verbs[1].Limits.RatePerMinute, 60)
}

func TestLoadEmbeddedDefaultCatalogue(t *testing.T) {
	t.Setenv("SANDBOX_FS_TRANSPORT", "stdio")

	raw, err := configs.Load("catalogue.yaml")
	assert.NilError(t, err)
	rendered, err := render.RenderBytes("catalogue.yaml", raw)
	assert.NilError(t, err)

	cat, err := Load(rendered)
	assert.NilError(t, err)
	assert.Equal(t, cat.Server.Name, "sandbox-fs")
	assert.Equal(t, cat.Server.Transport, "stdio")
	assert.Equal(t, len(cat.Verbs), 9)
}

func TestLoadEmptyInputFailsValidation(t *testing.T) {
	_, err := Load(nil)
	assert.ErrorContains(t, err, "server.name is required")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load([]byte("server:\n  name: x\n  version: \"1\"\n  bogus: true\nverbs: []\n"))
	assert.ErrorContains(t, err, "parse yaml")
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"missing server name", "server:\n  version: \"1\"\nverbs:\n  - name: list\n    description: d\n    input_schema:\n      type: object\n", "server.name is required"},
		{"missing version", "server:\n  name: x\nverbs:\n  - name: list\n    description: d\n    input_schema:\n      type: object\n", "server.version is required"},
		{"no verbs", "server:\n  name: x\n  version: \"1\"\nverbs: []\n", "at least one verb"},
		{"bad transport", "server:\n  name: x\n  version: \"1\"\n  transport: grpc\nverbs:\n  - name: list\n    description: d\n    input_schema:\n      type: object\n", "transport must be"},
		{"missing description", "server:\n  name: x\n  version: \"1\"\nverbs:\n  - name: list\n    input_schema:\n      type: object\n", "description is required"},
		{"missing schema", "server:\n  name: x\n  version: \"1\"\nverbs:\n  - name: list\n    description: d\n", "input_schema is required"},
		{"duplicate verb", "server:\n  name: x\n  version: \"1\"\nverbs:\n  - name: list\n    description: d\n    input_schema:\n      type: object\n  - name: list\n    description: d\n    input_schema:\n      type: object\n", "duplicate verb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.yaml))
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestValidateHTTPDefaults(t *testing.T) {
	cat, err := Load([]byte("server:\n  name: x\n  version: \"1\"\n  transport: http\nverbs:\n  - name: list\n    description: d\n    input_schema:\n      type: object\n"))
	assert.NilError(t, err)
	assert.Equal(t, cat.Server.HTTP.Listen, ":8080")
	assert.Equal(t, cat.Server.HTTP.Path, "/mcp")
}
