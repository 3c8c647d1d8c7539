package entity

import (
	"fmt"
	"strings"
)

// Language holds ui strings by key.
// Templates may hold {name} placeholders filled by Format.
type Language map[string]string

// Format looks up key and replaces {name} placeholders from kv pairs.
// A missing key formats as the key itself.
func (lang Language) Format(key string, kv ...any) string {

	tmpl, ok := lang[key]
	if !ok {
		tmpl = key
	}

	pairs := make([]string, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, fmt.Sprintf("{%v}", kv[i]), fmt.Sprintf("%v", kv[i+1]))
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}
