package domain

import "strings"

// FilterItems keeps the items whose value contains text, ignoring case.
// Order is preserved and empty text returns items unchanged.
func FilterItems(items []Item, text string) []Item {
	if text == "" {
		return items
	}

	needle := strings.ToLower(text)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Value), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
