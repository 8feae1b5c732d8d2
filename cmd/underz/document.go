package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	plog "github.com/phuslu/log"
	"github.com/tidwall/gjson"
	yaml "gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(format string) bool {
	return format == formatJSON || format == formatYAML
}

// readDocument decodes the input and narrows it to --path. Whatever the
// input format, the result holds only JSON values: nil, bool, float64,
// string, []any and map[string]any.
func (a *app) readDocument(stdin io.Reader) (any, error) {
	raw, err := a.readInput(stdin)
	if err != nil {
		return nil, err
	}

	var normalized []byte
	switch a.format {
	case formatJSON:
		if !gjson.ValidBytes(raw) {
			return nil, fmt.Errorf("decoding json: invalid document")
		}
		normalized = raw
	case formatYAML:
		var v any
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
		if normalized, err = json.Marshal(v); err != nil {
			return nil, fmt.Errorf("normalizing yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("input %q: %w", a.format, ErrUnsupportedFormat)
	}

	result := gjson.ParseBytes(normalized)
	if a.path != "" {
		result = gjson.GetBytes(normalized, a.path)
		if !result.Exists() {
			return nil, fmt.Errorf("%q: %w", a.path, ErrPathNotFound)
		}
	}
	a.log.Debug().Str("path", a.path).Int("bytes", len(raw)).Msg("decoded input")
	return result.Value(), nil
}

func (a *app) readInput(stdin io.Reader) ([]byte, error) {
	if a.input == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(a.input)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

func (a *app) writeResult(w io.Writer, v any) error {
	var buf bytes.Buffer
	switch a.output {
	case formatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case formatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	default:
		return fmt.Errorf("output %q: %w", a.output, ErrUnsupportedFormat)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// logResult records the size of a result at debug level.
func logResult(log *plog.Logger, op string, v any) {
	e := log.Debug().Str("operation", op)
	switch r := v.(type) {
	case []any:
		e = e.Int("elements", len(r))
	case map[string]any:
		e = e.Int("keys", len(r))
	}
	e.Msg("done")
}
