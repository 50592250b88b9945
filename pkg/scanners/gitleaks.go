package scanners

import (
	"encoding/json"
	"errors"
)

// ErrUnrecognizedStructure signals that a secret report was valid JSON but
// matched none of the known layouts. Callers must treat this as
// indeterminate, never as zero findings.
var ErrUnrecognizedStructure = errors.New("unrecognized secret report structure")

// secretArrayFields are the field names wrappers use when they re-wrap the
// scanner's finding list in an object. Gitleaks itself emits a bare array.
var secretArrayFields = []string{"findings", "results", "leaks", "secrets"}

// CountSecretFindings infers the number of secret findings from a report of
// unknown shape. Recognized in priority order: a bare array (its length), an
// object with one of the known array fields (that array's length), an object
// with a numeric total field (that number).
func CountSecretFindings(raw []byte) (int, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		return len(list), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return 0, ErrUnrecognizedStructure
	}

	for _, field := range secretArrayFields {
		value, ok := obj[field]
		if !ok {
			continue
		}
		var entries []json.RawMessage
		if err := json.Unmarshal(value, &entries); err == nil {
			return len(entries), nil
		}
	}

	if value, ok := obj["total"]; ok {
		var total float64
		if err := json.Unmarshal(value, &total); err == nil {
			return int(total), nil
		}
	}

	return 0, ErrUnrecognizedStructure
}
