package domain

import (
	"net/url"
	"strings"
)

// Placeholder is replaced by the serialized tags when a prompt is rendered
const Placeholder = "<pbprompt>"

// ExpandPlaceholder substitutes every Placeholder in prompt with tags. A blank
// tag string leaves the prompt untouched.
func ExpandPlaceholder(prompt, tags string) string {
	if strings.TrimSpace(tags) == "" || !strings.Contains(prompt, Placeholder) {
		return prompt
	}
	return strings.ReplaceAll(prompt, Placeholder, tags)
}

const danbooruWikiBase = "https://danbooru.donmai.us/wiki_pages/"

// DanbooruURL returns the wiki page link for a tag
func DanbooruURL(tag string) string {
	return danbooruWikiBase + url.PathEscape(tag)
}
