package axcelerate

import (
	"encoding/json"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// row is one raw record from the remote API. Missing keys read as nil,
// which renders as JSON null in the normalized shapes.
type row map[string]any

// rowList decodes a response that is either a bare JSON array or an
// object wrapping the array under a "data" key. Array entries which are
// not objects are skipped. Any other response shape decodes as empty,
// which the operations treat as "no results" rather than an error.
type rowList []row

///////////////////////////////////////////////////////////////////////////////
// JSON

func (l *rowList) UnmarshalJSON(data []byte) error {
	*l = nil

	// Accept a bare array, or fall back to the "data" wrapper
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		var wrapper struct {
			Data []json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil
		}
		items = wrapper.Data
	}

	// Keep the entries which are objects
	result := make(rowList, 0, len(items))
	for _, item := range items {
		var r row
		if err := json.Unmarshal(item, &r); err != nil || r == nil {
			continue
		}
		result = append(result, r)
	}
	*l = result
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toInt coerces a loosely-typed identifier to an integer. The remote API
// returns numbers for some deployments and strings for others.
func toInt(v any) (int, bool) {
	switch v := v.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
	}
	return 0, false
}
