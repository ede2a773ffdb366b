package content

import "errors"

var (
	ErrPageNotFound    = errors.New("content: page not found")
	ErrPostNotFound    = errors.New("content: blog post not found")
	ErrArticleNotFound = errors.New("content: article not found")
)
