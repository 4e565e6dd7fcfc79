package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/vk/weave"
	"github.com/vk/weave/component"
	"github.com/vk/weave/filter"
	"github.com/vk/weave/internal/ctxlog"
	"github.com/vk/weave/internal/fsutil"
	"github.com/vk/weave/layout"
)

// demoMessages translate the "$key" values of the embedded demo layout when
// no message file is configured.
var demoMessages = map[string]string{
	"demo.title":   "<b>weave</b> demo",
	"demo.button":  "Click me",
	"demo.another": "Or me",
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	controller any

	// mu guards root against the inspection server and the event relay.
	mu   sync.Mutex
	root component.Component

	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger writing to outW.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	a := &App{outW: outW, logger: logger, config: cfg}
	if cfg.Demo {
		a.controller = NewDemoController(logger)
		logger.Debug("Demo controller enabled.")
	}
	return a
}

// Controller returns the controller the tree is bound to, or nil.
func (a *App) Controller() any { return a.controller }

// Root returns the built tree, or nil before Build.
func (a *App) Root() component.Component {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.root
}

// LayoutPaths lists the layouts to build: the configured file, every layout
// below the configured directory, or nothing when the embedded demo layout
// is used.
func (a *App) LayoutPaths() ([]string, error) {
	if a.config.LayoutPath == "" {
		return nil, nil
	}
	paths, err := fsutil.FindFilesByExtension(a.config.LayoutPath, layout.Extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to find layouts: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no layout found in %s", a.config.LayoutPath)
	}
	return paths, nil
}

// Build assembles the layout at path, or the embedded demo layout when path
// is empty. The result becomes the tree served by Run.
func (a *App) Build(ctx context.Context, path string) (component.Component, error) {
	b := weave.New().BindTo(a.controller)
	name := path
	if path != "" {
		b.ReadFromFile(path)
	} else {
		name = DemoLayoutName
		b.ReadFromFS(demoFS, DemoLayoutName)
	}
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "layout", name)

	messages := map[string]string(nil)
	if a.config.MessagesPath != "" {
		m, err := LoadMessages(a.config.MessagesPath)
		if err != nil {
			return nil, err
		}
		messages = m
	} else if a.config.Demo {
		messages = demoMessages
	}
	if messages != nil {
		a.logger.Debug("Translating message keys.", "messages", len(messages))
		b.AddFilters(filter.Translate(filter.Messages(messages)))
	}

	root, err := b.Build(ctx)
	if err != nil {
		if weave.IsBindingError(err) {
			return nil, fmt.Errorf("failed to bind layout: %w", err)
		}
		return nil, fmt.Errorf("failed to build layout: %w", err)
	}

	a.mu.Lock()
	a.root = root
	a.mu.Unlock()
	return root, nil
}

// withRoot runs fn on the built tree while holding the tree lock.
func (a *App) withRoot(fn func(root component.Component) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.root == nil {
		return fmt.Errorf("tree has not been built")
	}
	return fn(a.root)
}
