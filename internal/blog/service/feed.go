package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/inkpress/internal/blog/paths"
	"github.com/aussiebroadwan/inkpress/internal/blog/store"
)

// FeedService renders the RSS 2.0 feed for the blog. The layout is fixed:
// feed readers and the tests depend on the exact element ordering and
// newline placement below, so the document is assembled by hand rather
// than through a marshaller.
type FeedService struct {
	Store       store.Store
	Paths       *paths.Creator
	Title       string
	Description string
}

// Generate builds the feed document. Drafts are excluded; items appear in
// creation order with links composed under the blog mount path.
func (s *FeedService) Generate(ctx context.Context) (string, error) {
	posts, err := s.Store.Posts().ListPublishedPosts(ctx)
	if err != nil {
		return "", fmt.Errorf("list posts: %w", err)
	}

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	b.WriteString("<rss version=\"2.0\">\n\n")
	b.WriteString("<channel>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", s.Title)
	fmt.Fprintf(&b, "<link>%s</link>\n", s.Paths.Root())
	fmt.Fprintf(&b, "<description>%s</description>\n", s.Description)
	b.WriteString("<generator>Inkpress</generator>\n")

	for _, post := range posts {
		b.WriteString("<item>\n")
		fmt.Fprintf(&b, "<title>\n%s\n</title>\n", post.Title)
		fmt.Fprintf(&b, "<description>\n%s\n</description>\n", post.ShortSnippet())
		fmt.Fprintf(&b, "<link>\n%s\n</link>\n", s.Paths.Post(post.Slug))
		b.WriteString("</item>\n")
	}

	b.WriteString("</channel>\n\n</rss>")
	return b.String(), nil
}
