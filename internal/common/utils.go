package common

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// htmlExtensions are picked up when an input is a directory.
var htmlExtensions = map[string]struct{}{
	".html": {},
	".htm":  {},
}

// FilterResultFields keeps only the requested top-level fields of result,
// keyed by their json tag. Nested values keep their own types, so ordered
// fields still serialise in order.
func FilterResultFields(result interface{}, fieldsStr string) (interface{}, error) {
	if strings.TrimSpace(fieldsStr) == "" {
		return result, nil
	}

	v := reflect.ValueOf(result)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot filter fields of %T", result)
	}

	byTag := make(map[string]interface{})
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		byTag[name] = v.Field(i).Interface()
	}

	filtered := make(map[string]interface{})
	for _, field := range strings.Split(fieldsStr, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		value, ok := byTag[field]
		if !ok {
			return nil, fmt.Errorf("unknown field: %s", field)
		}
		filtered[field] = value
	}
	return filtered, nil
}

// Marshal encodes v as indented JSON or as YAML.
func Marshal(v interface{}, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(v)
	case "json", "":
		return json.MarshalIndent(v, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// ExpandInputs turns the CLI inputs into a list of documents. Directories
// contribute their *.html and *.htm files (not recursive), sorted by name.
// "-" is passed through for stdin. Duplicates are dropped.
func ExpandInputs(inputs []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "-" {
			add(input)
			continue
		}

		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("invalid input %s: %w", input, err)
		}
		if !info.IsDir() {
			add(input)
			continue
		}

		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", input, err)
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if _, ok := htmlExtensions[strings.ToLower(filepath.Ext(e.Name()))]; ok {
				files = append(files, filepath.Join(input, e.Name()))
			}
		}
		sort.Strings(files)
		for _, f := range files {
			add(f)
		}
	}
	return out, nil
}

// OutputName derives the result file name for an input: page.html -> page.json.
func OutputName(input, format string) string {
	if input == "-" {
		return "stdin." + format
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}
