package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidPayload is returned when a payload is not JSON or does not match its schema.
var ErrInvalidPayload = errors.New("invalid payload")

const schemaBase = "https://booking-api.local/schemas/"

const (
	// Home is the schema of a single home payload.
	Home = "home.json"
	// HomeBatch is the schema of an array of home payloads.
	HomeBatch = "home-batch.json"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var compiledSchemas = mustCompile(Home, HomeBatch)

func mustCompile(names ...string) map[string]*jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	for _, name := range names {
		data, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			panic(fmt.Sprintf("contracts: read schema %s: %v", name, err))
		}
		if err := compiler.AddResource(schemaBase+name, bytes.NewReader(data)); err != nil {
			panic(fmt.Sprintf("contracts: add schema %s: %v", name, err))
		}
	}

	out := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		schema, err := compiler.Compile(schemaBase + name)
		if err != nil {
			panic(fmt.Sprintf("contracts: compile schema %s: %v", name, err))
		}
		out[name] = schema
	}
	return out
}

// Validate checks body against the named schema.
func Validate(name string, body []byte) error {
	schema, ok := compiledSchemas[name]
	if !ok {
		return fmt.Errorf("schema %q not found", name)
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("%w: body is not valid JSON: %v", ErrInvalidPayload, err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

// ValidateHome checks a single home payload.
func ValidateHome(body []byte) error {
	return Validate(Home, body)
}

// ValidateHomeBatch checks an array of home payloads.
func ValidateHomeBatch(body []byte) error {
	return Validate(HomeBatch, body)
}
