package app

import (
	"context"
	"fmt"

	"github.com/vk/weave/component"
	"github.com/vk/weave/internal/ctxlog"
	"github.com/vk/weave/internal/relay"
	"github.com/vk/weave/internal/render"
)

// Run builds the tree, prints it and, when serving or relaying, keeps it
// alive until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	paths, err := a.LayoutPaths()
	if err != nil {
		return err
	}
	keepAlive := a.config.ServePort > 0 || a.config.EventsURL != ""
	if keepAlive && len(paths) > 1 {
		return fmt.Errorf("serving or relaying needs a single layout, %s holds %d", a.config.LayoutPath, len(paths))
	}
	if len(paths) == 0 {
		paths = []string{""}
	}

	for _, path := range paths {
		root, err := a.Build(ctx, path)
		if err != nil {
			return err
		}
		title := path
		if title == "" {
			title = DemoLayoutName
		}
		a.logger.Info("🧩 Tree assembled.", "layout", title, "root", render.TypeName(root), "id", root.ID())
		fmt.Fprintln(a.outW, render.Framed(title, root))
	}

	if !keepAlive {
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	if a.config.ServePort > 0 {
		a.startInspectionServer(ctx, a.config.ServePort)
		defer a.closeInspectionServer(ctx)
	}

	if a.config.EventsURL != "" {
		r, err := relay.Connect(ctx, relay.Config{
			URL:       a.config.EventsURL,
			Namespace: a.config.EventsNamespace,
		})
		if err != nil {
			return fmt.Errorf("failed to start event relay: %w", err)
		}
		defer r.Close()
		return r.Serve(ctx, func(cmd relay.Command) error {
			return a.withRoot(func(root component.Component) error {
				return relay.Dispatch(ctx, root, cmd)
			})
		})
	}

	<-ctx.Done()
	a.logger.Debug("App.Run method finished.")
	return nil
}
