// Package api holds the OpenAPI description of the journeymap HTTP surface.
package api

import _ "embed"

// OpenAPI is the raw OpenAPI 3.0 document served at /openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte
