package vault

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Field extracts key from the data of the secret read at path.
//
// Vault answers in two shapes. The versioned KV engine nests the fields as
// {"data": {...}, "metadata": {...}}; the legacy KV engine and the dynamic
// engines return the fields directly. Field picks the shape as follows:
//
//  1. data holds both a "data" object and a "metadata" object: use the inner data.
//  2. key is present at the outer level: use it.
//  3. data holds a "data" object: use the inner data.
//
// A key absent from the chosen map is a *KeyNotFoundError.
func Field(data map[string]any, path, key string) (string, error) {
	fields := data
	inner, nested := data["data"].(map[string]any)
	_, hasMetadata := data["metadata"].(map[string]any)
	if nested && hasMetadata {
		fields = inner
	} else if _, ok := data[key]; !ok && nested {
		fields = inner
	}

	v, ok := fields[key]
	if !ok {
		return "", &KeyNotFoundError{Path: path, Key: key}
	}
	return Stringify(v)
}

// Stringify renders a decoded JSON value as the string a caller expects in an
// environment variable. Strings are returned as is, numbers and booleans in
// their JSON spelling, null as "", and objects and arrays as compact JSON.
func Stringify(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case nil:
		return "", nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("vault: render value of type %T: %w", v, err)
	}
	return string(b), nil
}
