package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"socialcopilot/internal/common"
)

// rawContent keeps hashtags undecoded so a malformed value can be repaired
// instead of failing the whole parse.
type rawContent struct {
	Hook     string          `json:"hook"`
	Body     string          `json:"body"`
	CTA      string          `json:"cta"`
	Tip      string          `json:"tip"`
	Hashtags json.RawMessage `json:"hashtags"`
}

// ParseGeneratedContent turns a raw provider payload into validated content.
// Fenced code blocks are stripped first since models wrap JSON in markdown
// despite instructions. Missing hook/body/cta is a hard parse error; missing
// or malformed hashtags are repaired to an empty list because they are
// supplementary.
func ParseGeneratedContent(raw string) (*common.GeneratedContent, error) {
	cleaned := stripFences(raw)

	var rc rawContent
	if err := json.Unmarshal([]byte(cleaned), &rc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrGenerationParse, err)
	}

	if strings.TrimSpace(rc.Hook) == "" {
		return nil, fmt.Errorf("%w: missing hook", common.ErrGenerationParse)
	}
	if strings.TrimSpace(rc.Body) == "" {
		return nil, fmt.Errorf("%w: missing body", common.ErrGenerationParse)
	}
	if strings.TrimSpace(rc.CTA) == "" {
		return nil, fmt.Errorf("%w: missing cta", common.ErrGenerationParse)
	}

	return &common.GeneratedContent{
		Hook:     rc.Hook,
		Body:     rc.Body,
		CTA:      rc.CTA,
		Tip:      rc.Tip,
		Hashtags: repairHashtags(rc.Hashtags),
	}, nil
}

func repairHashtags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(strings.TrimPrefix(t, "#"))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
