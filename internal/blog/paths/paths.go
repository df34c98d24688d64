// Package paths composes route paths under the blog's configurable mount
// path. A blog mounted at "/blog-path" serves its login form at
// "/blog-path/login"; mounted at the root it serves "/login".
package paths

import "strings"

type Creator struct {
	blogPath  string // normalized: no leading/trailing slashes, "" for root
	adminPath string
}

func NewCreator(blogPath string) *Creator {
	return &Creator{blogPath: strings.Trim(blogPath, "/"), adminPath: "admin"}
}

// WithAdminPath overrides the administrative landing path segment.
func (c *Creator) WithAdminPath(adminPath string) *Creator {
	out := *c
	if adminPath = strings.Trim(adminPath, "/"); adminPath != "" {
		out.adminPath = adminPath
	}
	return &out
}

// Path joins parts under the blog mount path, always with a leading slash.
func (c *Creator) Path(parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	if c.blogPath != "" {
		segments = append(segments, c.blogPath)
	}
	for _, p := range parts {
		if p = strings.Trim(p, "/"); p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}

// Root is the public blog root, always slash-terminated.
func (c *Creator) Root() string {
	if c.blogPath == "" {
		return "/"
	}
	return "/" + c.blogPath + "/"
}

// Login is the login form path.
func (c *Creator) Login() string { return c.Path("login") }

// LoginRequired is the redirect target for unauthenticated access to a
// guarded path.
func (c *Creator) LoginRequired() string { return c.Login() + "?loginRequired=true" }

// Admin is the administrative landing path, the redirect target after a
// successful login or password reset.
func (c *Creator) Admin() string { return c.Path(c.adminPath) }

// Post is the public page for a post, slash-terminated to match feed links.
func (c *Creator) Post(slug string) string { return c.Path("posts", slug) + "/" }

// RSS is the feed path.
func (c *Creator) RSS() string { return c.Path("rss.xml") }
