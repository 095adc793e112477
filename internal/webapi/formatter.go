// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

const jsonMediaType = "application/json; charset=utf-8"

// ContractResolver maps Go struct field names to JSON property names. It is
// only consulted for exported fields without an explicit json tag name.
type ContractResolver interface {
	ResolvePropertyName(fieldName string) string
}

// DefaultContractResolver keeps field names unchanged.
type DefaultContractResolver struct{}

// ResolvePropertyName implements [ContractResolver].
func (*DefaultContractResolver) ResolvePropertyName(fieldName string) string {
	return fieldName
}

// CamelCasePropertyNamesContractResolver lower-cases the leading run of
// upper-case letters: "Title" becomes "title", "ISBNCode" becomes "isbnCode".
type CamelCasePropertyNamesContractResolver struct{}

// ResolvePropertyName implements [ContractResolver].
func (*CamelCasePropertyNamesContractResolver) ResolvePropertyName(fieldName string) string {
	return toCamelCase(fieldName)
}

func toCamelCase(s string) string {
	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return s
	}

	runes := []rune(s)
	for i := range runes {
		if i == 1 && !unicode.IsUpper(runes[i]) {
			break
		}
		hasNext := i+1 < len(runes)
		if i > 0 && hasNext && !unicode.IsUpper(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// SerializerSettings controls how the [JSONFormatter] reads and writes
// bodies. Settings are read when the formatter is first used.
type SerializerSettings struct {
	// ContractResolver renames untagged fields. Nil keeps Go field names.
	ContractResolver ContractResolver

	// Indent pretty-prints responses with the given number of spaces.
	Indent int

	// EscapeHTML escapes <, > and & inside strings.
	EscapeHTML bool

	// DisallowUnknownFields rejects request bodies with unknown properties.
	DisallowUnknownFields bool
}

// JSONFormatter reads and writes JSON bodies.
type JSONFormatter struct {
	SerializerSettings SerializerSettings

	once sync.Once
	api  jsoniter.API
}

// NewJSONFormatter returns a formatter with HTML escaping on and no contract
// resolver.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		SerializerSettings: SerializerSettings{EscapeHTML: true},
	}
}

// API returns the frozen jsoniter configuration built from the settings.
// Changing SerializerSettings after the first call has no effect.
func (f *JSONFormatter) API() jsoniter.API {
	f.once.Do(func() {
		settings := f.SerializerSettings
		api := jsoniter.Config{
			EscapeHTML:             settings.EscapeHTML,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
			IndentionStep:          settings.Indent,
			DisallowUnknownFields:  settings.DisallowUnknownFields,
		}.Froze()

		if settings.ContractResolver != nil {
			api.RegisterExtension(&contractResolverExtension{resolver: settings.ContractResolver})
		}
		f.api = api
	})
	return f.api
}

// Marshal encodes v.
func (f *JSONFormatter) Marshal(v any) ([]byte, error) {
	return f.API().Marshal(v)
}

// ReadFrom decodes a single JSON value from r into v.
func (f *JSONFormatter) ReadFrom(r io.Reader, v any) error {
	return f.API().NewDecoder(r).Decode(v)
}

// WriteResponse encodes v and writes it with the given status.
func (f *JSONFormatter) WriteResponse(w http.ResponseWriter, status int, v any) (int, error) {
	data, err := f.Marshal(v)
	if err != nil {
		http.Error(w, msgInternalServerError, http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", jsonMediaType)
	w.WriteHeader(status)

	return w.Write(data)
}

// contractResolverExtension applies a ContractResolver to struct bindings.
type contractResolverExtension struct {
	jsoniter.DummyExtension
	resolver ContractResolver
}

func (e *contractResolverExtension) UpdateStructDescriptor(sd *jsoniter.StructDescriptor) {
	for _, binding := range sd.Fields {
		name := binding.Field.Name()
		first, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsUpper(first) {
			continue
		}

		if tag, ok := binding.Field.Tag().Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName != "" {
				// hidden ("-") or explicitly named
				continue
			}
		}

		resolved := e.resolver.ResolvePropertyName(name)
		binding.ToNames = []string{resolved}
		binding.FromNames = []string{resolved}
	}
}
