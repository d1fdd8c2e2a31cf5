package interactive

import (
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// matches tries a substring match first, then a fuzzy one
func matches(input, item string) bool {
	if strings.Contains(item, input) {
		return true
	}
	return len(fuzzy.Find(input, []string{item})) > 0
}
