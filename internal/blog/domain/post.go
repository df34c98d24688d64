package domain

import (
	"strings"
	"time"
)

// snippetLength is the soft cap for post summaries: whole lines are taken
// until the accumulated text exceeds this many characters.
const snippetLength = 400

// Post is a blog entry. Draft posts (Published == false) are only visible
// in the admin area and are excluded from public listings and the RSS feed.
type Post struct {
	ID        string
	Title     string
	Contents  string
	Slug      string
	AuthorID  string
	Published bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShortSnippet returns the leading lines of the post contents for use as a
// summary in listings and feed item descriptions. Lines keep their trailing
// newline; accumulation stops once the snippet passes the length cap.
func (p Post) ShortSnippet() string {
	var b strings.Builder
	for _, line := range strings.Split(p.Contents, "\n") {
		b.WriteString(line)
		b.WriteString("\n")
		if b.Len() > snippetLength {
			break
		}
	}
	return b.String()
}
