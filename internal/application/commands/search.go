package commands

import (
	"context"
	"sort"
	"strings"

	"promptbuilder/internal/application"
	"promptbuilder/internal/domain"
)

// SearchResult wraps domain.Item with a relevance score
type SearchResult struct {
	domain.Item
	Score int
}

// SearchCommand searches every category's tags with fuzzy matching
type SearchCommand struct {
	widget *application.Widget
	Query  string
	Limit  int // 0 for no limit
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(widget *application.Widget, query string, limit int) *SearchCommand {
	return &SearchCommand{
		widget: widget,
		Query:  query,
		Limit:  limit,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	taxonomy := c.widget.Taxonomy()
	if taxonomy == nil {
		return nil, application.ErrNotReady
	}
	if len(c.Query) < 2 {
		return nil, nil
	}

	results := FuzzySort(taxonomy.Items(), c.Query)
	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}
	return results, nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '_' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores items by value and by path, dropping non-matches. Equal
// scores keep payload order.
func FuzzySort(items []domain.Item, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(items))

	for _, item := range items {
		valueScore := FuzzyScore(item.Value, query)
		// path hits are weighted down against value hits
		pathScore := FuzzyScore(item.Path.String(), query) / 4

		best := max(valueScore, pathScore)
		if best > 0 {
			scored = append(scored, SearchResult{
				Item:  item,
				Score: best,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
