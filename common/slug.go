package common

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

func Slugify(input, fallback string) (string, error) {
	slug := slugify(input)
	if slug == "" {
		slug = slugify(fallback)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// ReportFileName derives an output file name for the report of a document,
// e.g. "Chapter 3 (final).docx" with ext "yaml" becomes "chapter-3-final-report.yaml".
func ReportFileName(docPath, ext string) string {
	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	slug, err := Slugify(base, "document")
	if err != nil {
		slug = "document"
	}
	return slug + "-report." + strings.TrimPrefix(ext, ".")
}

func slugify(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	slug := nonSlugChars.ReplaceAllString(lower, "-")
	return strings.Trim(slug, "-")
}
