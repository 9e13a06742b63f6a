package news

import (
	"fmt"
	"strings"
	"testing"
)

func raw(title, url, desc, published string) rawArticle {
	var a rawArticle
	a.Source.Name = "Reuters"
	a.Title = title
	a.URL = url
	a.Description = desc
	a.PublishedAt = published
	return a
}

func TestCurate_DeduplicatesByTitleAndLink(t *testing.T) {
	items := []rawArticle{
		raw("Apple beats estimates", "https://example.com/a", "desc", "2025-03-01T10:00:00Z"),
		raw("Apple beats estimates", "https://example.com/b", "desc", "2025-03-01T09:00:00Z"), // same title, new link
		raw("Apple Q1 results", "https://example.com/a", "desc", "2025-03-01T08:00:00Z"),      // new title, same link
		raw("Apple Q1 results in depth", "https://example.com/c", "desc", "2025-03-01T07:00:00Z"),
	}
	out := curate(items, 5)
	if len(out) != 2 {
		t.Fatalf("want 2 articles, got %d: %+v", len(out), out)
	}
	if out[0].Link != "https://example.com/a" || out[1].Link != "https://example.com/c" {
		t.Fatalf("unexpected survivors: %+v", out)
	}
}

func TestCurate_RejectsLowQualityArticles(t *testing.T) {
	items := []rawArticle{
		raw("", "https://example.com/a", "desc", "2025-03-01T10:00:00Z"),
		raw("No link", "", "desc", "2025-03-01T10:00:00Z"),
		raw("[Removed]", "https://example.com/b", "desc", "2025-03-01T10:00:00Z"),
		raw("[REMOVED]", "https://example.com/c", "desc", "2025-03-01T10:00:00Z"),
		raw("No description", "https://example.com/d", "", "2025-03-01T10:00:00Z"),
		raw("Keeper", "https://example.com/e", "desc", "2025-03-01T10:00:00Z"),
	}
	out := curate(items, 5)
	if len(out) != 1 || out[0].Title != "Keeper" {
		t.Fatalf("unexpected: %+v", out)
	}
}

func TestCurate_TruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("x", 200)
	out := curate([]rawArticle{raw("Title", "https://example.com/a", long, "2025-03-01T10:00:00Z")}, 5)
	if len(out) != 1 {
		t.Fatalf("want 1, got %d", len(out))
	}
	want := strings.Repeat("x", 150) + "..."
	if out[0].Description != want {
		t.Fatalf("description %q (len %d)", out[0].Description, len(out[0].Description))
	}

	short := strings.Repeat("x", 150)
	out = curate([]rawArticle{raw("Title", "https://example.com/a", short, "2025-03-01T10:00:00Z")}, 5)
	if out[0].Description != short {
		t.Fatalf("150-char description should pass untouched, got len %d", len(out[0].Description))
	}
}

func TestCurate_FormatsPublishDate(t *testing.T) {
	out := curate([]rawArticle{
		raw("A", "https://example.com/a", "desc", "2025-03-05T10:12:13Z"),
		raw("B", "https://example.com/b", "desc", "not-a-timestamp"),
		raw("C", "https://example.com/c", "desc", ""),
	}, 5)
	if len(out) != 3 {
		t.Fatalf("want 3, got %d", len(out))
	}
	if out[0].PublishedAt != "Mar 05, 2025" {
		t.Fatalf("date %q", out[0].PublishedAt)
	}
	if out[1].PublishedAt != "Recent" || out[2].PublishedAt != "Recent" {
		t.Fatalf("fallback dates %q %q", out[1].PublishedAt, out[2].PublishedAt)
	}
}

func TestCurate_CapsResultSize(t *testing.T) {
	var items []rawArticle
	for i := 0; i < 20; i++ {
		items = append(items, raw(
			fmt.Sprintf("Title %d", i),
			fmt.Sprintf("https://example.com/%d", i),
			"desc", "2025-03-01T10:00:00Z"))
	}
	out := curate(items, 5)
	if len(out) != 5 {
		t.Fatalf("want 5, got %d", len(out))
	}
	// provider order is preserved
	for i, a := range out {
		if a.Title != fmt.Sprintf("Title %d", i) {
			t.Fatalf("order broken at %d: %+v", i, a)
		}
	}
}

func TestCurate_ScansAtMostTwenty(t *testing.T) {
	var items []rawArticle
	// 25 entries, only the 21st onward are acceptable
	for i := 0; i < 20; i++ {
		items = append(items, raw("", "", "", ""))
	}
	for i := 20; i < 25; i++ {
		items = append(items, raw(fmt.Sprintf("Title %d", i), fmt.Sprintf("https://example.com/%d", i), "desc", ""))
	}
	if out := curate(items, 5); len(out) != 0 {
		t.Fatalf("articles beyond the scan window must be ignored, got %+v", out)
	}
}
