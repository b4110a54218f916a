// Package convert bridges non-JSON sources into a cjlib Value tree,
// built entirely from the facade's own Set-family primitives so that the
// OrderedMap/Sequence layer stays the single path every tree in this
// repo is built through. Grounded on awsqed-config-formatter's use of
// gopkg.in/yaml.v3 to round-trip structured text.
package convert

import (
	"fmt"
	"sort"

	cjlib "github.com/constarg/cjlib-go"
	"gopkg.in/yaml.v3"
)

// YAMLToValue decodes raw YAML bytes and rebuilds the result as a cjlib
// Value tree, using object-set/array-append the same way the parser
// does, so a YAML source is reachable through the same ownership model
// as a JSON one.
func YAMLToValue(raw []byte) (*cjlib.Value, error) {
	var decoded interface{}
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("cjlib/convert: decode yaml: %w", err)
	}
	return fromGo(decoded), nil
}

func fromGo(v interface{}) *cjlib.Value {
	switch t := v.(type) {
	case nil:
		return cjlib.NewNull()
	case bool:
		return cjlib.NewBool(t)
	case string:
		return cjlib.NewString(t)
	case int:
		return cjlib.NewInteger(int64(t))
	case int64:
		return cjlib.NewInteger(t)
	case float64:
		return cjlib.NewNumber(t)
	case []interface{}:
		arr := cjlib.NewArray()
		seq, _ := arr.AsArray()
		for _, item := range t {
			seq.Append(fromGo(item))
		}
		return arr
	case map[string]interface{}:
		obj := cjlib.NewObject()
		om, _ := obj.AsObject()
		for _, k := range sortedKeys(t) {
			// Insert cannot fail here: k is unique by construction of a
			// Go map, so DuplicateKey is unreachable.
			_ = om.Insert(k, fromGo(t[k]))
		}
		return obj
	default:
		return cjlib.NewString(fmt.Sprintf("%v", t))
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
