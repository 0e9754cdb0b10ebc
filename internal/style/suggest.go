package style

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// suggest returns a " (did you mean 'x'?)" hint for the closest candidate,
// or "" when nothing resembles the input.
func suggest(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean '%s'?)", matches[0].Str)
}
