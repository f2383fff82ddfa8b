package markup

import "strings"

// Format applies rules to a single line: every remove in order, then every
// replace in order on the cumulative result, then trims surrounding
// whitespace. All matching is literal, so a short pattern such as "[b]" also
// matches inside longer tokens.
func Format(line string, rules Rules) string {
	for _, pattern := range rules.Removes {
		if pattern == "" {
			continue
		}
		line = strings.ReplaceAll(line, pattern, "")
	}
	for _, r := range rules.Replaces {
		if r.Search == "" {
			continue
		}
		line = strings.ReplaceAll(line, r.Search, r.Replace)
	}
	return strings.TrimSpace(line)
}

// IsMetadata reports whether line starts with one of the metadata prefixes.
func (r Rules) IsMetadata(line string) bool {
	return hasAnyPrefix(line, r.MetadataPrefixes)
}

// IsDefinition reports whether line starts with one of the definition prefixes.
func (r Rules) IsDefinition(line string) bool {
	return hasAnyPrefix(line, r.DefinitionPrefixes)
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
