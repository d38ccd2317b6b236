package service

import (
	"regexp"
	"strings"
)

// Models occasionally wrap words in /slashes/ for emphasis and append a
// generic "how can I help" closer. Both read poorly in a chat reply and
// are stripped before the answer is returned.
var (
	slashEmphasisPattern = regexp.MustCompile(`(^|\s)/(\S(?:[^/\n]*\S)?)/`)
	boilerplatePattern   = regexp.MustCompile(`(?is)how (?:else )?can i help.*$`)
)

// CleanAnswer applies the post-processing filter to a model answer.
func CleanAnswer(answer string) string {
	answer = slashEmphasisPattern.ReplaceAllString(answer, "$1$2")
	answer = boilerplatePattern.ReplaceAllString(answer, "")
	return strings.TrimSpace(answer)
}
