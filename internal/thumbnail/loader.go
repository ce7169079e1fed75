package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ytget/recipe-finder/internal/logging"
	"github.com/ytget/recipe-finder/internal/model"
)

// Fetch limits
const (
	DefaultParallel = 4
	MaxParallel     = 8
	DefaultTimeout  = 15 * time.Second
	MaxImageBytes   = 5 << 20

	// Token bucket for image fetches
	FetchesPerSecond = 10
	FetchBurst       = 4
)

var (
	// ErrNoURL is returned for recipes without a thumbnail URL
	ErrNoURL = errors.New("no thumbnail url")
	// ErrNotImage is returned when the fetched bytes are not an image
	ErrNotImage = errors.New("not an image")
)

// Loader fetches thumbnails over HTTP
type Loader struct {
	mu       sync.RWMutex
	client   *http.Client
	limiter  *rate.Limiter
	parallel int
	logger   *zap.Logger
}

// NewLoader creates a new thumbnail loader with the given parallelism
func NewLoader(parallel int, logger *zap.Logger) *Loader {
	return &Loader{
		client:   &http.Client{Timeout: DefaultTimeout},
		limiter:  rate.NewLimiter(rate.Limit(FetchesPerSecond), FetchBurst),
		parallel: clampParallel(parallel),
		logger:   logging.OrNop(logger),
	}
}

// SetHTTPClient replaces the underlying HTTP client
func (l *Loader) SetHTTPClient(client *http.Client) {
	if client == nil {
		return
	}
	l.mu.Lock()
	l.client = client
	l.mu.Unlock()
}

// SetLimit replaces the fetch rate. A zero or negative limit disables pacing.
func (l *Loader) SetLimit(perSecond float64, burst int) {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if perSecond > 0 {
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}

	l.mu.Lock()
	l.limiter = limiter
	l.mu.Unlock()
}

// SetParallel changes the maximum number of concurrent fetches for later loads
func (l *Loader) SetParallel(parallel int) {
	l.mu.Lock()
	l.parallel = clampParallel(parallel)
	l.mu.Unlock()
}

// Parallel returns the maximum number of concurrent fetches
func (l *Loader) Parallel() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.parallel
}

// Load fetches a single image and returns it as a resource
func (l *Loader) Load(ctx context.Context, rawURL string) (fyne.Resource, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrNoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	l.mu.RLock()
	client := l.client
	l.mu.RUnlock()

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("thumbnail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("thumbnail returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail: %w", err)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, mtype.String())
	}

	return fyne.NewStaticResource(resourceName(rawURL, mtype.Extension()), data), nil
}

// LoadAll fetches the thumbnails of all recipes and calls fn once per recipe,
// in completion order, with either the image or the placeholder. It only
// returns an error when ctx is canceled.
func (l *Loader) LoadAll(ctx context.Context, recipes []model.Recipe, fn func(recipeID string, res fyne.Resource)) error {
	l.mu.RLock()
	limiter := l.limiter
	l.mu.RUnlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.Parallel())

	for _, recipe := range recipes {
		g.Go(func() error {
			if !recipe.HasThumbnail() {
				fn(recipe.IDMeal, Placeholder)
				return nil
			}

			if err := limiter.Wait(gctx); err != nil {
				return err
			}

			res, err := l.Load(gctx, recipe.StrMealThumb)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				l.logger.Debug("thumbnail fallback",
					zap.String("recipe_id", recipe.IDMeal),
					zap.String("url", recipe.StrMealThumb),
					zap.Error(err))
				res = Placeholder
			}

			fn(recipe.IDMeal, res)
			return nil
		})
	}

	return g.Wait()
}

// resourceName derives a stable resource name from the image URL
func resourceName(rawURL, ext string) string {
	name := ""
	if u, err := url.Parse(rawURL); err == nil {
		name = path.Base(u.Path)
	}
	if name == "" || name == "." || name == "/" {
		name = "thumbnail"
	}
	if path.Ext(name) == "" {
		name += ext
	}
	return name
}

// clampParallel keeps parallelism within 1..MaxParallel
func clampParallel(parallel int) int {
	if parallel <= 0 {
		return DefaultParallel
	}
	if parallel > MaxParallel {
		return MaxParallel
	}
	return parallel
}
