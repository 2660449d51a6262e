package transformers

import (
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

type linkTransformer struct{}

func NewLinkTransformer() LinkTransformer {
	return &linkTransformer{}
}

// NormalizeExternalLink hides empty and "#" links and prefixes bare hosts with https://.
func (t *linkTransformer) NormalizeExternalLink(input string) (string, bool) {
	link := strings.TrimSpace(input)
	if link == "" || link == "#" {
		return "", false
	}
	if !schemePattern.MatchString(link) {
		link = "https://" + link
	}
	return link, true
}
