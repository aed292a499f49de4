package common

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

const (
	TopicMinLen = 3
	TopicMaxLen = 500

	HookMaxLen = 500
	BodyMaxLen = 5000
	CTAMaxLen  = 500
	TipMaxLen  = 500
)

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidRequest)
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidRequest)
	}
	if len(password) > 100 {
		return fmt.Errorf("%w: password is too long", ErrInvalidRequest)
	}
	return nil
}

// ValidateTopic enforces the same bounds for generation and for direct draft
// creation: trimmed length in [3, 500]. Length is counted in runes, not
// bytes, so accented text is not over-counted.
func ValidateTopic(topic string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(topic))
	if n < TopicMinLen || n > TopicMaxLen {
		return fmt.Errorf("%w: topic must be between %d and %d characters", ErrInvalidRequest, TopicMinLen, TopicMaxLen)
	}
	return nil
}

// injectionDenylist holds phrases that are stripped case-insensitively from
// any client text before it reaches an LLM prompt. A mitigation, not a
// guarantee.
var injectionDenylist = []string{
	"ignore previous instructions",
	"ignore all previous instructions",
	"disregard previous instructions",
	"ignore the instructions above",
	"system prompt",
	"you are now",
	"new instructions:",
}

var denylistPatterns = compileDenylist()

func compileDenylist() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(injectionDenylist))
	for _, phrase := range injectionDenylist {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(phrase)))
	}
	return patterns
}

// SanitizeText prepares a client-supplied free-text field for prompt
// interpolation: truncate to maxLen runes, drop angle brackets, strip denylisted
// injection phrases. Must run on every field that reaches a prompt.
func SanitizeText(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxLen {
		r := []rune(s)
		s = string(r[:maxLen])
	}
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	for _, p := range denylistPatterns {
		s = p.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}
