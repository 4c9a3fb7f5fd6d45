package content

import (
	"bytes"
	"context"
	"encoding/json"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/common/metrics"
	"github.com/FaizBuildsStuff/matera-media/internal/sections"
)

// pageQuery fetches one page document by slug (or well-known _id such as
// "home"), expanding the section tree and resolving media references to
// plain URLs in a single round trip.
const pageQuery = `*[_type == "page" && (_id == $slug || slug.current == $slug)][0]{
  _id,
  title,
  slug,
  sections[]{
    _type,
    _key,
    ...,
    items[]{
      _key,
      ...,
      "image": image.asset->url,
      videoUrl
    },
    steps[]{
      _key,
      ...
    },
    plans[]{
      _key,
      ...
    }
  }
}`

type Slug struct {
	Current string `json:"current"`
}

// Page is the content store's page document: a title plus an ordered
// section list. The application never mutates pages.
type Page struct {
	ID       string             `json:"_id"`
	Title    string             `json:"title"`
	Slug     Slug               `json:"slug"`
	Sections sections.BlockList `json:"sections"`
}

// PageFetcher fetches one page by slug. A nil page with a nil error
// means the document does not exist, which is not a failure: the caller
// falls back to default content.
type PageFetcher interface {
	FetchPage(ctx context.Context, slug string) (*Page, error)
}

// FetchPage implements PageFetcher against the store's query API.
func (c *Client) FetchPage(ctx context.Context, slug string) (*Page, error) {
	result, err := c.Query(ctx, pageQuery, map[string]interface{}{"slug": slug})
	if err != nil {
		metrics.ContentFetches.WithLabelValues(metrics.FetchError).Inc()
		return nil, apperrors.NewContentFetchFailedError(slug, err)
	}

	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		metrics.ContentFetches.WithLabelValues(metrics.FetchNotFound).Inc()
		return nil, nil
	}

	var page Page
	if err := json.Unmarshal(result, &page); err != nil {
		metrics.ContentFetches.WithLabelValues(metrics.FetchError).Inc()
		return nil, apperrors.NewContentFetchFailedError(slug, err)
	}

	metrics.ContentFetches.WithLabelValues(metrics.FetchHit).Inc()
	return &page, nil
}
