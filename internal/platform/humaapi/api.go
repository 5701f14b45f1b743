// Package humaapi builds the huma API served by the process.
package humaapi

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
)

// Title is the OpenAPI title of the service.
const Title = "App Name Greeter"

// NewConfig returns huma defaults restricted to the registered operations: the
// OpenAPI, docs and schema routes are disabled and response bodies carry no
// $schema link. JSON stays the default format; CBOR is served on request.
func NewConfig(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	cfg.CreateHooks = nil
	cfg.Transformers = nil
	return cfg
}

// New mounts a huma API on router and advertises CBOR alongside JSON for every
// operation registered afterwards.
func New(router chi.Router, version string) huma.API {
	api := humachi.New(router, NewConfig(version))
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)
	return api
}

func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
