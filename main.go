package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/recipe-finder/internal/cli"
	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/mealdb"
	"github.com/ytget/recipe-finder/internal/search"
	"github.com/ytget/recipe-finder/internal/thumbnail"
	"github.com/ytget/recipe-finder/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.recipe-finder"
	AppName = "Recipe Finder"
)

func main() {
	opts := cli.Options{
		Version: version,
		Launch:  runWindow,
	}
	if err := cli.Execute(opts); err != nil {
		os.Exit(1)
	}
}

// runWindow opens the desktop window and blocks until it is closed
func runWindow(ctx context.Context, run cli.RunConfig) error {
	logger := run.Logger
	logger.Info("starting", zap.String("name", AppName))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.LogoResource)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	settings.ApplyOverrides(run.Overrides)

	client := mealdb.NewClient(settings.GetAPIBaseURL(), settings.GetRequestTimeout(), logger)
	searchSvc := search.NewService(client, logger)
	thumbs := thumbnail.NewLoader(settings.GetThumbnailParallel(), logger)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, settings, searchSvc, thumbs, logger)
	rootUI.SetOnSettingsSaved(func(s *config.Settings) {
		client.Configure(s.GetAPIBaseURL(), s.GetRequestTimeout())
		thumbs.SetParallel(s.GetThumbnailParallel())
		logger.Info("settings applied",
			zap.String("api_url", client.BaseURL()),
			zap.Duration("timeout", client.Timeout()),
			zap.Int("thumbnail_parallel", thumbs.Parallel()))
	})

	myWindow.SetOnClosed(func() {
		rootUI.Close()
		searchSvc.Close()
	})

	// Quit on SIGINT/SIGTERM
	stop := context.AfterFunc(ctx, func() {
		fyne.Do(myApp.Quit)
	})
	defer stop()

	// Show and run
	myWindow.ShowAndRun()
	logger.Info("window closed")
	return nil
}
