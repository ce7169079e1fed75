package model

import (
	"fmt"
	"strings"
)

// Snippet sizing
const (
	SnippetLength = 120
	SnippetSuffix = "..."
)

// Recipe is a single meal record as returned by the search API
type Recipe struct {
	IDMeal          string `json:"idMeal"`
	StrMeal         string `json:"strMeal"`
	StrMealThumb    string `json:"strMealThumb"`
	StrInstructions string `json:"strInstructions"`
	StrCategory     string `json:"strCategory"`
	StrArea         string `json:"strArea"`
	StrYoutube      string `json:"strYoutube,omitempty"`
	StrSource       string `json:"strSource,omitempty"`
}

// SearchResponse is the envelope of the search endpoint. Meals is nil when
// the API reports no matches.
type SearchResponse struct {
	Meals []Recipe `json:"meals"`
}

// Snippet returns the first SnippetLength characters of the instructions
// followed by an ellipsis. The ellipsis is always appended.
func (r Recipe) Snippet() string {
	runes := []rune(r.StrInstructions)
	if len(runes) > SnippetLength {
		runes = runes[:SnippetLength]
	}
	return string(runes) + SnippetSuffix
}

// PrimaryLink returns the link opened when the card is activated: the source
// page if present, otherwise the video, otherwise empty.
func (r Recipe) PrimaryLink() string {
	if r.StrSource != "" {
		return r.StrSource
	}
	return r.StrYoutube
}

// HasVideo reports whether the recipe carries a video link
func (r Recipe) HasVideo() bool {
	return r.StrYoutube != ""
}

// HasThumbnail reports whether the recipe carries a thumbnail URL
func (r Recipe) HasThumbnail() bool {
	return strings.TrimSpace(r.StrMealThumb) != ""
}

// DisplayTitle returns the meal name with line breaks and tabs collapsed to
// single spaces. The record itself is left untouched.
func (r Recipe) DisplayTitle() string {
	return strings.Join(strings.Fields(r.StrMeal), " ")
}

// ResultsHeading returns the heading shown above the result grid
func ResultsHeading(count int) string {
	suffix := "s"
	if count == 1 {
		suffix = ""
	}
	return fmt.Sprintf("Found %d delicious recipe%s", count, suffix)
}
