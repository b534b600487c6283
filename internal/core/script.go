package core

import (
	"fmt"
	"strings"
)

// instantiateScript substitutes every bound slot's store path into the
// script template, then the recipe's own name and version. Templates must
// come out fully resolved: a leftover {{...}} token means a slot was
// referenced but never bound, and the submission is refused.
func instantiateScript(name, version, template string, bindings []binding) (string, error) {
	pairs := make([]string, 0, 2*len(bindings)+4)
	for _, bound := range bindings {
		pairs = append(pairs, placeholder(bound.slot), bound.ref.Dir())
	}
	pairs = append(pairs,
		placeholder("name"), name,
		placeholder("version"), version,
	)

	script := strings.NewReplacer(pairs...).Replace(template)

	if start := strings.Index(script, "{{"); start >= 0 {
		token := script[start:]
		if end := strings.Index(token, "}}"); end >= 0 {
			token = token[:end+2]
		}
		return "", newUnresolvedPlaceholder(name, token)
	}
	return script, nil
}

func placeholder(slot string) string {
	return fmt.Sprintf("{{%s}}", slot)
}
