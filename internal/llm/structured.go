package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON extracts a JSON object of type T from raw LLM text output.
// Models wrap JSON in markdown fences, prose, and the occasional // comment
// despite instructions not to; extraction tolerates all of these. Decoding
// is attempted from each '{' in the sanitized text until one succeeds.
// If validator is non-nil, the extracted value is validated before return.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	cleaned := sanitize(raw)

	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] != '{' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(cleaned[i:]))
		var result T
		if err := dec.Decode(&result); err != nil {
			continue
		}
		if validator != nil {
			if err := validator(result); err != nil {
				return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
			}
		}
		return result, nil
	}

	return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
}

// sanitize drops markdown fence lines and line comments outside of JSON
// string values.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for line := range strings.Lines(s) {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		b.WriteString(stripLineComment(line))
	}
	return b.String()
}

func stripLineComment(line string) string {
	inString := false
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case c == '/' && !inString && i+1 < len(line) && line[i+1] == '/':
			return line[:i] + "\n"
		}
	}
	return line
}
