package news

import (
	"strings"
	"time"
)

const (
	// maxScan bounds how deep into the upstream result list curation looks.
	maxScan = 20
	// maxDescription is the display length cap before ellipsis truncation.
	maxDescription = 150
	// recentSentinel replaces publish dates that fail to parse.
	recentSentinel = "Recent"
	// removedTitle marks articles NewsAPI has redacted.
	removedTitle = "[removed]"
)

// curate filters, deduplicates and formats upstream articles, preserving
// their order. An article is dropped when the title or link is empty or
// already seen, the title is the "[Removed]" placeholder in any casing, or
// the description is empty.
func curate(items []rawArticle, limit int) []Article {
	if limit <= 0 {
		limit = 5
	}
	if len(items) > maxScan {
		items = items[:maxScan]
	}

	out := make([]Article, 0, limit)
	seenTitles := make(map[string]struct{}, len(items))
	seenLinks := make(map[string]struct{}, len(items))

	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" || item.URL == "" || item.Description == "" {
			continue
		}
		if strings.EqualFold(title, removedTitle) {
			continue
		}
		if _, ok := seenTitles[title]; ok {
			continue
		}
		if _, ok := seenLinks[item.URL]; ok {
			continue
		}
		seenTitles[title] = struct{}{}
		seenLinks[item.URL] = struct{}{}

		source := item.Source.Name
		if source == "" {
			source = "Unknown"
		}

		out = append(out, Article{
			Title:       title,
			Link:        item.URL,
			Source:      source,
			Description: truncate(item.Description, maxDescription),
			PublishedAt: formatPublished(item.PublishedAt),
		})
		if len(out) >= limit {
			break
		}
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// formatPublished reformats an ISO-8601 timestamp ("Z" suffix treated as
// UTC) to a short human date, falling back to the "Recent" sentinel.
func formatPublished(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return recentSentinel
	}
	return t.Format("Jan 02, 2006")
}
