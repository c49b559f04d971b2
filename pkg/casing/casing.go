// Package casing converts between the snake_case names used inside the
// service and the camelCase field names stored in documents.
package casing

import (
	"strings"
	"unicode"
)

// ToCamel converts "custom_prompt_suffix" to "customPromptSuffix".
// The first segment is kept as-is and every following segment is title-cased.
func ToCamel(snake string) string {
	parts := strings.Split(snake, "_")
	var sb strings.Builder
	sb.Grow(len(snake))
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		runes := []rune(strings.ToLower(p))
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}
	return sb.String()
}

// ToSnake converts "customPromptSuffix" to "custom_prompt_suffix" by
// inserting an underscore before every upper-case letter except the first.
func ToSnake(camel string) string {
	var sb strings.Builder
	sb.Grow(len(camel) + 4)
	for i, r := range camel {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
