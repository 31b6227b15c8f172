package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type DonateReq struct {
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Genre     string `json:"genre" validate:"required"`
	Publisher string `json:"publisher" validate:"required"`
}

// normalize title-cases donation input before it reaches the resolver, so
// natural-key lookups stay stable ("frank herbert" and "Frank Herbert" are
// the same author).
func normalize(s string) string {
	return cases.Title(language.English).String(s)
}
