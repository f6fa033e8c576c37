// Package openapi generates an OpenAPI skeleton from the route definition
// files discovered in an app directory. The skeleton documents each route's
// URL shape and path parameters; request/response schemas are left for the
// project to fill in.
package openapi

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/routelens/routelens/pkg/scanner"
)

// Config configures spec generation.
type Config struct {
	// Title is the API title (required).
	Title string

	// Version is the API version (default: "1.0.0").
	Version string

	// Description is the API description.
	Description string

	// ServerURL is an optional server URL.
	ServerURL string

	// OpenAPIVersion is the OpenAPI spec version (default: "3.1.0").
	OpenAPIVersion string
}

// Generator generates OpenAPI specs from discovered routes.
type Generator struct {
	config  Config
	scanner *scanner.Scanner
}

// NewGenerator creates a generator over the given app directory. base is the
// definition file name without extension; empty means the default.
func NewGenerator(appDir, base string, config Config) *Generator {
	if config.Version == "" {
		config.Version = "1.0.0"
	}
	if config.OpenAPIVersion == "" {
		config.OpenAPIVersion = "3.1.0"
	}
	if config.Title == "" {
		config.Title = "Routes"
	}
	return &Generator{
		config:  config,
		scanner: scanner.New(appDir, base),
	}
}

// Generate builds the OpenAPI document.
func (g *Generator) Generate() (*openapi3.T, error) {
	result, err := g.scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan routes: %w", err)
	}

	doc := &openapi3.T{
		OpenAPI: g.config.OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       g.config.Title,
			Version:     g.config.Version,
			Description: g.config.Description,
		},
		Paths: openapi3.NewPaths(),
	}

	if g.config.ServerURL != "" {
		doc.Servers = openapi3.Servers{
			&openapi3.Server{URL: g.config.ServerURL},
		}
	}

	for _, route := range result.Routes {
		// Two group variants of one route collapse onto the same pattern;
		// the first scanned wins.
		if doc.Paths.Value(route.Pattern) != nil {
			continue
		}
		doc.Paths.Set(route.Pattern, g.buildPathItem(route))
	}

	return doc, nil
}

// buildPathItem builds the path item for one route.
func (g *Generator) buildPathItem(route scanner.Route) *openapi3.PathItem {
	op := &openapi3.Operation{
		Summary:     fmt.Sprintf("Route %s", route.Route),
		OperationID: operationID(route.Pattern),
		Responses:   openapi3.NewResponses(),
	}

	op.Responses.Set("200", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: openapi3.Ptr("Success"),
		},
	})

	params := buildParameters(route.Params)
	if len(params) > 0 {
		op.Parameters = params
		op.Responses.Set("404", &openapi3.ResponseRef{
			Value: &openapi3.Response{
				Description: openapi3.Ptr("Not Found"),
			},
		})
	}

	return &openapi3.PathItem{Get: op}
}

// buildParameters converts route parameters into path parameters. Catch-alls
// are arrays of strings; everything else is a string.
func buildParameters(routeParams []scanner.Param) openapi3.Parameters {
	var params openapi3.Parameters
	for _, p := range routeParams {
		schema := &openapi3.Schema{Type: &openapi3.Types{"string"}}
		if p.IsCatchAll {
			schema = &openapi3.Schema{
				Type: &openapi3.Types{"array"},
				Items: &openapi3.SchemaRef{
					Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
				},
			}
		}

		params = append(params, &openapi3.ParameterRef{
			Value: &openapi3.Parameter{
				Name:        p.Name,
				In:          "path",
				Required:    !p.IsOptional,
				Description: fmt.Sprintf("%s parameter", p.Name),
				Schema:      &openapi3.SchemaRef{Value: schema},
			},
		})
	}
	return params
}

// operationID derives a stable operation id from a pattern.
// Example: "/users/{id}" -> "getUsersId"
func operationID(pattern string) string {
	var b strings.Builder
	b.WriteString("get")
	for _, part := range strings.Split(pattern, "/") {
		part = strings.Trim(part, "{}")
		part = strings.ReplaceAll(part, "-", "_")
		for _, chunk := range strings.Split(part, "_") {
			if chunk == "" {
				continue
			}
			b.WriteString(strings.ToUpper(chunk[:1]))
			if len(chunk) > 1 {
				b.WriteString(chunk[1:])
			}
		}
	}
	if b.Len() == len("get") {
		return "getRoot"
	}
	return b.String()
}

// GenerateJSON returns the spec as JSON bytes.
func (g *Generator) GenerateJSON() ([]byte, error) {
	doc, err := g.Generate()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// GenerateYAML returns the spec as YAML bytes.
func (g *Generator) GenerateYAML() ([]byte, error) {
	doc, err := g.Generate()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// WriteToFile writes the spec to a file.
func (g *Generator) WriteToFile(path, format string) error {
	var data []byte
	var err error

	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err = g.GenerateYAML()
	case "json":
		data, err = g.GenerateJSON()
	default:
		return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
