package render

import (
	"fmt"
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// IssueFileName is the output file for the index-th issue card.
func IssueFileName(index int) string {
	return fmt.Sprintf("issue_%d.svg", index)
}

// StatusFileName is the output file for a status label card.
func StatusFileName(labelName string) string {
	return "status_" + Slug(labelName) + ".svg"
}

// Slug lowercases s and collapses every run of other characters into "-".
func Slug(s string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if slug == "" {
		return "label"
	}
	return slug
}
