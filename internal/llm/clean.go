package llm

import (
	"regexp"
	"strings"
)

var (
	fenceStart  = regexp.MustCompile("(?s)^```[a-zA-Z0-9_-]*\\s*")
	fenceEnd    = regexp.MustCompile("(?s)\\s*```$")
	thinkBlocks = regexp.MustCompile("(?is)<think>.*?</think>")
)

// CleanContent quita BOM, bloques <think> de modelos de razonamiento y un
// fence ``` que envuelva toda la respuesta.
func CleanContent(raw string) string {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "\uFEFF")
	s = strings.TrimSpace(thinkBlocks.ReplaceAllString(s, ""))
	if strings.HasPrefix(s, "```") && strings.HasSuffix(s, "```") && len(s) >= 6 {
		s = fenceStart.ReplaceAllString(s, "")
		s = fenceEnd.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}
