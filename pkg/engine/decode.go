package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// StripFences removes every ```json and ``` fence from text and trims the
// result, leaving the JSON payload embedded in an issue body or export
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// DecodeRecords decodes a JSON payload into raw records. The payload must be
// an array of objects; anything else is a shape failure and yields no records.
// Numbers are kept as json.Number.
func DecodeRecords(data []byte) ([]model.RawRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, goerr.Wrap(model.ErrInvalidShape, "payload is not valid JSON",
			goerr.V("cause", err.Error()))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, goerr.Wrap(model.ErrInvalidShape, "unexpected data after JSON payload")
	}

	items, ok := decoded.([]any)
	if !ok {
		return nil, goerr.Wrap(model.ErrInvalidShape, "expected an array of issues",
			goerr.V("type", jsonKind(decoded)))
	}

	records := make([]model.RawRecord, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, goerr.Wrap(model.ErrInvalidShape, "expected an object",
				goerr.V("index", i),
				goerr.V("type", jsonKind(item)))
		}
		records[i] = model.RawRecord(obj)
	}
	return records, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}
