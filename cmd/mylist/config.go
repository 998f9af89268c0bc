package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAMLLoader reads flag defaults from a YAML mapping. Keys are flag names;
// underscores may stand in for dashes. Values given on the command line
// take precedence.
//
//	locale: es
//	dedupe: true
//	viewer_out: ~/Desktop/mylist.html
func YAMLLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	normalized := make(map[string]any, len(values))
	for k, v := range values {
		normalized[strings.ReplaceAll(strings.ToLower(k), "_", "-")] = v
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		v, ok := normalized[flag.Name]
		if !ok || v == nil {
			return nil, nil
		}
		switch v := v.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("config key %q: expected a scalar value", flag.Name)
		default:
			return fmt.Sprint(v), nil
		}
	}
	return f, nil
}
