// Package relay connects to a socket.io server and fires the events it
// receives on the components of an assembled tree.
package relay

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/weave/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const (
	DefaultEvent   = "fire"
	AckEvent       = "fired"
	DefaultTimeout = 15 * time.Second
)

// Config describes the server to relay from.
type Config struct {
	URL                string
	Namespace          string
	Event              string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Relay is a connected socket.io client.
type Relay struct {
	io    *socket.Socket
	event string
}

// Connect dials cfg.URL and waits for the connection to be established.
func Connect(ctx context.Context, cfg Config) (*Relay, error) {
	logger := ctxlog.FromContext(ctx).With("relay", cfg.URL)
	logger.Info("Connecting event relay...")

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("relay URL %q must be absolute", cfg.URL)
	}
	if cfg.Event == "" {
		cfg.Event = DefaultEvent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connected := make(chan error, 1)
	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Event relay connected", "sid", io.Id())
		report(connected, nil)
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		report(connected, connectError(errs...))
	})

	io.Connect()

	select {
	case err := <-connected:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &Relay{io: io, event: cfg.Event}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, errors.New("context cancelled while waiting for socket.io connection")
	case <-time.After(cfg.Timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", cfg.Timeout)
	}
}

// report delivers the first connection outcome. Later ones are dropped so
// that socket callbacks never block.
func report(connected chan<- error, err error) {
	select {
	case connected <- err:
	default:
	}
}

// connectError turns the arguments of a connect_error event into an error.
func connectError(args ...any) error {
	if len(args) == 0 || args[0] == nil {
		return errors.New("connection refused without a reason")
	}
	if err, ok := args[0].(error); ok {
		return err
	}
	return fmt.Errorf("%v", args[0])
}

// Serve hands every received command to apply and acknowledges it with an
// AckEvent carrying the outcome. It blocks until ctx is done.
func (r *Relay) Serve(ctx context.Context, apply func(Command) error) error {
	logger := ctxlog.FromContext(ctx).With("event", r.event)

	r.io.On(types.EventName(r.event), func(args ...any) {
		cmd, err := Decode(args...)
		if err == nil {
			err = apply(cmd)
		}
		ack := map[string]any{"id": cmd.ID, "event": cmd.Event, "ok": err == nil}
		if err != nil {
			logger.Warn("Relayed event failed", "id", cmd.ID, "kind", cmd.Event, "error", err)
			ack["error"] = err.Error()
		} else {
			logger.Debug("Relayed event applied", "id", cmd.ID, "kind", cmd.Event)
		}
		r.io.Emit(AckEvent, ack)
	})

	<-ctx.Done()
	return nil
}

// Close disconnects from the server.
func (r *Relay) Close() {
	r.io.Disconnect()
}
