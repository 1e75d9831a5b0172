// Package formschema evaluates assessment responses against the JSON-schema-like
// form definitions attached to indicators.
package formschema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"vantage/pkg/domain"
)

// Result is the outcome of Validate.
type Result struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Validate checks that data carries every required field of schema and that
// the fields described under "properties" have the declared type and, when
// given, one of the enumerated values.
func Validate(schema domain.FormSchema, data domain.ResponseData) Result {
	errs := make([]string, 0)

	for _, field := range stringList(schema["required"]) {
		if _, ok := data[field]; !ok {
			errs = append(errs, fmt.Sprintf("Required field '%s' is missing", field))
		}
	}

	props := properties(schema)
	for _, field := range sortedKeys(data) {
		fieldSchema, ok := props[field]
		if !ok {
			continue
		}
		errs = append(errs, validateField(field, data[field], fieldSchema)...)
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func validateField(name string, value any, fieldSchema map[string]any) []string {
	var errs []string

	if typ, _ := fieldSchema["type"].(string); typ != "" && !hasType(value, typ) {
		errs = append(errs, fmt.Sprintf("Field '%s' must be %s", name, typeNames[typ]))
	}

	if enum, ok := fieldSchema["enum"].([]any); ok && len(enum) > 0 && !inEnum(value, enum) {
		names := make([]string, 0, len(enum))
		for _, e := range enum {
			names = append(names, fmt.Sprint(e))
		}
		errs = append(errs, fmt.Sprintf("Field '%s' must be one of: %s", name, strings.Join(names, ", ")))
	}

	return errs
}

var typeNames = map[string]string{ //nolint: gochecknoglobals
	"string":  "a string",
	"number":  "a number",
	"boolean": "a boolean",
	"array":   "an array",
}

func hasType(value any, typ string) bool {
	switch typ {
	case "string":
		_, ok := value.(string)
		return ok
	case "number":
		// booleans count as numbers
		if _, ok := value.(bool); ok {
			return true
		}
		_, ok := toFloat(value)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "array":
		if value == nil {
			return false
		}
		k := reflect.TypeOf(value).Kind()
		return k == reflect.Slice || k == reflect.Array
	default:
		return true
	}
}

func inEnum(value any, enum []any) bool {
	vf, vNum := toFloat(value)
	for _, e := range enum {
		if ef, ok := toFloat(e); ok && vNum {
			if ef == vf {
				return true
			}
			continue
		}
		if reflect.DeepEqual(value, e) {
			return true
		}
	}

	return false
}

// toFloat reports numeric values. Booleans never match numeric enum values.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

var complianceValues = map[string]struct{}{"yes": {}, "no": {}, "na": {}} //nolint: gochecknoglobals

// IsComplete reports whether a response may count towards progress given the
// MOVs currently attached to it.
func IsComplete(schema domain.FormSchema, data domain.ResponseData, movs []domain.MOV) bool {
	if len(data) == 0 {
		return false
	}

	required := stringList(schema["required"])
	if len(required) == 0 {
		for _, v := range data {
			s, ok := v.(string)
			if !ok {
				continue
			}
			if _, valid := complianceValues[strings.ToLower(s)]; valid && strings.EqualFold(s, "yes") && len(movs) == 0 {
				return false
			}
		}

		return true
	}

	anyYes := false
	for _, field := range required {
		s, _ := data[field].(string)
		if _, ok := complianceValues[s]; !ok {
			return false
		}
		if s == "yes" {
			anyYes = true
		}
	}
	if !anyYes {
		return true
	}

	sections := uploadSections(schema)
	if len(sections) == 0 {
		return len(movs) > 0
	}

	for _, section := range sections {
		found := false
		for _, m := range movs {
			if strings.Contains(m.StoragePath, section) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// HasYesAnswer reports whether data holds a "YES" string (any case) or a true
// boolean.
func HasYesAnswer(data domain.ResponseData) bool {
	for _, v := range data {
		switch val := v.(type) {
		case string:
			if strings.EqualFold(val, "YES") {
				return true
			}
		case bool:
			if val {
				return true
			}
		}
	}

	return false
}

// uploadSections returns the distinct mov_upload_section names declared by
// the schema's properties.
func uploadSections(schema domain.FormSchema) []string {
	props := properties(schema)
	seen := make(map[string]struct{}, len(props))
	sections := make([]string, 0)
	for _, name := range sortedKeys(props) {
		section, ok := props[name]["mov_upload_section"].(string)
		if !ok {
			continue
		}
		if _, dup := seen[section]; dup {
			continue
		}
		seen[section] = struct{}{}
		sections = append(sections, section)
	}

	return sections
}

func properties(schema domain.FormSchema) map[string]map[string]any {
	raw, _ := schema["properties"].(map[string]any)
	props := make(map[string]map[string]any, len(raw))
	for name, v := range raw {
		if m, ok := v.(map[string]any); ok {
			props[name] = m
		} else {
			props[name] = map[string]any{}
		}
	}

	return props
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
