package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/mealdb"
	"github.com/ytget/recipe-finder/internal/search"
)

// ErrSearchFailed is returned when the headless search ends in the error state
var ErrSearchFailed = errors.New("search failed")

// Search command flags
const (
	FlagOpen  = "open"
	FlagLimit = "limit"
)

func newSearchCommand(a *app) *cobra.Command {
	var (
		openFirst bool
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "search <term...>",
		Short: "Search recipes and print them as cards",
		Long: `Search TheMealDB without opening the window. All arguments are joined into
one query. The result heading, the cards or the empty state are printed.`,
		Example: `  recipe-finder search chicken
  recipe-finder search apple pie --limit 3
  RECIPE_FINDER_THEME=dark recipe-finder search cake --open`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, strings.Join(args, " "), openFirst, limit)
		},
	}

	cmd.Flags().BoolVar(&openFirst, FlagOpen, false, "open the first result's link in the browser")
	cmd.Flags().IntVar(&limit, FlagLimit, 0, "print at most this many cards (0 prints all)")

	return cmd
}

// runSearch performs one search action and prints its outcome
func (a *app) runSearch(cmd *cobra.Command, query string, openFirst bool, limit int) error {
	overrides := a.overrides()
	client := mealdb.NewClient(overrides.APIBaseURL, a.timeoutOr(mealdb.DefaultTimeout), a.logger)
	svc := search.NewService(client, a.logger)
	defer svc.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stop := context.AfterFunc(ctx, svc.Close)
	defer stop()

	if _, err := svc.Submit(query); err != nil {
		return err
	}
	svc.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	state := svc.State()
	mode := overrides.Theme
	if mode == "" {
		mode = config.DefaultTheme
	}

	out := cmd.OutOrStdout()
	fprintln(out, NewRenderer(mode).RenderState(state, limit))

	if state.HasError() {
		return fmt.Errorf("%w: %q", ErrSearchFailed, state.Query)
	}

	if openFirst && state.Count() > 0 {
		link := state.Recipes[0].PrimaryLink()
		if link == "" {
			a.logger.Info("first result has no link", zap.String("recipe_id", state.Recipes[0].IDMeal))
			return nil
		}
		if err := a.opts.Opener(link); err != nil {
			return fmt.Errorf("failed to open %s: %w", link, err)
		}
	}

	return nil
}
