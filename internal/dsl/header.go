package dsl

import (
	"strings"

	"github.com/heartmarshall/dslconv/internal/domain"
)

// ParseHeader reads the `#NAME`, `#INDEX_LANGUAGE` and `#CONTENTS_LANGUAGE`
// directives from the leading metadata block of a DSL file. Values are
// unquoted. Scanning stops at the first line that is neither blank nor a
// directive.
func ParseHeader(lines []string) domain.DictionaryHeader {
	var h domain.DictionaryHeader
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}

		key, value := splitDirective(line[1:])
		switch strings.ToUpper(key) {
		case "NAME":
			h.Name = value
		case "INDEX_LANGUAGE":
			h.IndexLanguage = value
		case "CONTENTS_LANGUAGE":
			h.ContentsLanguage = value
		}
	}
	return h
}

func splitDirective(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return strings.TrimSpace(s), ""
	}
	key := s[:i]
	value := strings.TrimSpace(s[i+1:])
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return key, value
}
