// Package patch applies field-level edits to a request DTO. Applying the
// edits and persisting the merged record are separate steps; persistence
// stays with the caller.
package patch

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Op is a single field-level edit. Only "replace" is supported.
type Op struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"` // "/fieldName", matching the DTO's json tag
	Value json.RawMessage `json:"value"`
}

// Apply applies ops to dst, a pointer to a struct whose json tags define
// the closed set of patchable fields. Any failure, including a value that
// does not fit its field, fails the whole patch and leaves dst unmodified.
func Apply(ops []Op, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("patch destination must be a non-nil pointer")
	}

	raw, err := json.Marshal(dst)
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}

	for _, op := range ops {
		if op.Op != "replace" {
			return fmt.Errorf("unsupported patch op %q", op.Op)
		}
		field := strings.TrimPrefix(op.Path, "/")
		if _, ok := fields[field]; !ok {
			return fmt.Errorf("unknown patch path %q", op.Path)
		}
		if len(op.Value) == 0 {
			return fmt.Errorf("missing value for patch path %q", op.Path)
		}
		fields[field] = op.Value
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	// Decode into a scratch copy so a value that fails to unmarshal cannot
	// leave dst half-patched.
	tmp := reflect.New(rv.Type().Elem())
	tmp.Elem().Set(rv.Elem())
	if err := json.Unmarshal(merged, tmp.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(tmp.Elem())
	return nil
}
