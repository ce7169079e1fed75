package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

const chickenResponse = `{"meals":[
 {"idMeal":"52795","strMeal":"Chicken Handi","strMealThumb":"https://www.themealdb.com/images/media/meals/wyxwsp1486979827.jpg",
  "strInstructions":"Take a large pot or wok, big enough to cook all the chicken, and heat the oil in it.",
  "strCategory":"Chicken","strArea":"Indian","strYoutube":"https://www.youtube.com/watch?v=IO0issT0Rmc","strSource":""},
 {"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strMealThumb":"",
  "strInstructions":"Preheat oven to 350 F.","strCategory":"Chicken","strArea":"Japanese",
  "strYoutube":"","strSource":"https://www.example.com/teriyaki"}
]}`

// newMealServer serves body for every search request
func newMealServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// execute runs the command tree with args and returns stdout
func execute(t *testing.T, opts Options, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(opts)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// clearEnv makes sure the developer's environment does not leak into tests
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"RECIPE_FINDER_API_URL", "RECIPE_FINDER_TIMEOUT", "RECIPE_FINDER_THEME", "RECIPE_FINDER_VERBOSE"} {
		t.Setenv(key, "")
	}
}
