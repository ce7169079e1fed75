package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_Snippet(t *testing.T) {
	long := strings.Repeat("a", 200)

	tests := []struct {
		name         string
		instructions string
		expected     string
	}{
		{"empty", "", "..."},
		{"short", "Boil water.", "Boil water...."},
		{"exactly limit", strings.Repeat("b", SnippetLength), strings.Repeat("b", SnippetLength) + "..."},
		{"long", long, strings.Repeat("a", SnippetLength) + "..."},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := Recipe{StrInstructions: test.instructions}
			assert.Equal(t, test.expected, r.Snippet())
		})
	}
}

func TestRecipe_SnippetCountsRunes(t *testing.T) {
	r := Recipe{StrInstructions: strings.Repeat("é", 150)}

	snippet := r.Snippet()

	assert.Equal(t, SnippetLength+len([]rune(SnippetSuffix)), len([]rune(snippet)))
	assert.True(t, strings.HasSuffix(snippet, SnippetSuffix))
}

func TestRecipe_PrimaryLink(t *testing.T) {
	tests := []struct {
		source   string
		youtube  string
		expected string
	}{
		{"https://example.com/r", "https://www.youtube.com/watch?v=1", "https://example.com/r"},
		{"", "https://www.youtube.com/watch?v=1", "https://www.youtube.com/watch?v=1"},
		{"", "", ""},
	}

	for _, test := range tests {
		r := Recipe{StrSource: test.source, StrYoutube: test.youtube}
		if got := r.PrimaryLink(); got != test.expected {
			t.Errorf("PrimaryLink() with source=%q youtube=%q = %q, expected %q",
				test.source, test.youtube, got, test.expected)
		}
	}
}

func TestRecipe_HasVideoAndThumbnail(t *testing.T) {
	assert.True(t, Recipe{StrYoutube: "https://www.youtube.com/watch?v=1"}.HasVideo())
	assert.False(t, Recipe{}.HasVideo())
	assert.True(t, Recipe{StrMealThumb: "https://img/x.jpg"}.HasThumbnail())
	assert.False(t, Recipe{StrMealThumb: "  "}.HasThumbnail())
}

func TestRecipe_DisplayTitle(t *testing.T) {
	r := Recipe{StrMeal: "  Spicy\tArrabiata\nPenne "}

	assert.Equal(t, "Spicy Arrabiata Penne", r.DisplayTitle())
	assert.Equal(t, "  Spicy\tArrabiata\nPenne ", r.StrMeal)
}

func TestResultsHeading(t *testing.T) {
	assert.Equal(t, "Found 0 delicious recipes", ResultsHeading(0))
	assert.Equal(t, "Found 1 delicious recipe", ResultsHeading(1))
	assert.Equal(t, "Found 25 delicious recipes", ResultsHeading(25))
}

func TestSearchResponse_Decode(t *testing.T) {
	payload := `{"meals":[{"idMeal":"52771","strMeal":"Spicy Arrabiata Penne",
		"strMealThumb":"https://www.themealdb.com/images/media/meals/ustsqw1468250014.jpg",
		"strInstructions":"Bring a large pot of water to a boil.","strCategory":"Vegetarian",
		"strArea":"Italian","strYoutube":"https://www.youtube.com/watch?v=1IszT_guI08","strSource":null}]}`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.Len(t, resp.Meals, 1)

	meal := resp.Meals[0]
	assert.Equal(t, "52771", meal.IDMeal)
	assert.Equal(t, "Italian", meal.StrArea)
	assert.Empty(t, meal.StrSource)
	assert.Equal(t, meal.StrYoutube, meal.PrimaryLink())
}

func TestSearchResponse_DecodeNullMeals(t *testing.T) {
	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(`{"meals":null}`), &resp))
	assert.Nil(t, resp.Meals)
}
