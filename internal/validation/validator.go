package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/news-comments-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CommentBody validates and normalizes a comment body: leading and trailing
// whitespace is trimmed, the result must be non-empty and within the word
// cap. Returns the trimmed body.
func CommentBody(text string) (string, error) {
	body := strings.TrimSpace(text)
	if body == "" {
		return "", fmt.Errorf("%w: comment text must not be empty", models.ErrInvalidInput)
	}
	if words := len(strings.Fields(body)); words > models.MaxCommentWords {
		return "", fmt.Errorf("%w: comment exceeds %d words", models.ErrInvalidInput, models.MaxCommentWords)
	}
	return body, nil
}

// Email reports whether the value looks like a valid email address
func Email(value string) bool {
	return emailRegex.MatchString(value)
}
