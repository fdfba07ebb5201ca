package swagger

import _ "embed"

// OpenAPI contains the embedded OpenAPI YAML description.
//
//go:embed openapi.yaml
var OpenAPI []byte
