package news

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strings"
)

// Article is a curated news item ready for display.
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"`
}

type rawArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

type searchResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []rawArticle `json:"articles"`
}

// Search queries the "everything" endpoint for recent coverage of query,
// restricted to the configured domain allow-list and sorted newest first,
// then curates the results. A non-success HTTP status or a non-"ok" API
// status yields zero results rather than an error; only transport and
// decode failures are returned.
func (c *Client) Search(ctx context.Context, query string) ([]Article, error) {
	q := maps.Clone(c.query)
	q.Set("q", fmt.Sprintf("%s stock OR %s earnings OR %s financial", query, query, query))
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("domains", strings.Join(c.domains, ","))

	u := fmt.Sprintf("%s/everything?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, nil
	}

	var body searchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if body.Status != "ok" {
		return nil, nil
	}
	return curate(body.Articles, c.maxArticles), nil
}
