package engine

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/genricoloni/btremote/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Link resolves the remote and establishes connections to it
type Link interface {
	Resolve(ctx context.Context) (domain.DeviceHandle, error)
	Connect(ctx context.Context, target domain.DeviceHandle) (domain.Connection, error)
}

// StreamDecoder consumes a connection until the stream ends
type StreamDecoder interface {
	Run(ctx context.Context, r io.Reader) error
}

// Engine owns the single worker that connects to the remote, decodes its
// commands and reconnects whenever the stream ends.
type Engine struct {
	logger  *zap.Logger
	link    Link
	decoder StreamDecoder

	mu     sync.Mutex
	cancel context.CancelFunc // non-nil from Start until Stop
	done   chan struct{}      // closed once the current worker has exited
	conn   *onceCloser        // connection currently loaned to the decoder
}

// NewEngine creates a new orchestration engine
func NewEngine(logger *zap.Logger, link Link, decoder StreamDecoder) *Engine {
	return &Engine{
		logger:  logger,
		link:    link,
		decoder: decoder,
	}
}

// Start resolves the target device and launches the connect/decode worker.
// It returns immediately after resolution; a missing device is returned as
// domain.ErrDeviceNotFound and nothing is started. A Stop that arrives while
// the target is being resolved wins: no worker is launched.
func (e *Engine) Start(ctx context.Context) error {
	// The worker outlives the start context
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	// At most one worker: wait out one that an expired Stop left behind
	for {
		e.mu.Lock()
		if e.cancel != nil {
			e.mu.Unlock()
			cancel()
			return nil
		}
		prev := e.done
		if prev == nil || isClosed(prev) {
			e.cancel = cancel
			e.done = done
			e.mu.Unlock()
			break
		}
		e.mu.Unlock()

		select {
		case <-prev:
		case <-ctx.Done():
			cancel()
			return fmt.Errorf("previous worker is still stopping: %w", ctx.Err())
		}
	}

	e.logger.Info("Engine starting...")

	target, err := e.resolve(ctx, runCtx)
	if runCtx.Err() != nil {
		close(done)
		e.logger.Info("Engine stopped before the worker was launched")
		return nil
	}
	if err != nil {
		e.mu.Lock()
		e.cancel = nil
		e.mu.Unlock()
		cancel()
		close(done)
		return err
	}

	go e.runLoop(runCtx, target, done)
	return nil
}

func isClosed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// resolve looks up the target, giving up when either the start context or
// the stop signal is done.
func (e *Engine) resolve(startCtx, runCtx context.Context) (domain.DeviceHandle, error) {
	ctx, cancel := context.WithCancel(startCtx)
	defer cancel()
	stop := context.AfterFunc(runCtx, cancel)
	defer stop()

	return e.link.Resolve(ctx)
}

// runLoop alternates between connecting and decoding until stopped
func (e *Engine) runLoop(ctx context.Context, target domain.DeviceHandle, done chan struct{}) {
	defer close(done)

	for session := 1; ; session++ {
		conn, err := e.link.Connect(ctx, target)
		if err != nil {
			e.logger.Info("Engine loop stopped", zap.Error(err))
			return
		}

		tracked := e.attach(ctx, conn)
		if tracked == nil {
			e.logger.Info("Engine loop stopped before decoding")
			return
		}

		e.logger.Info("Decoding session started",
			zap.String("device", target.Name),
			zap.Int("session", session))

		err = e.decoder.Run(ctx, tracked)
		e.detach(tracked)

		if ctx.Err() != nil {
			e.logger.Info("Engine loop stopped")
			return
		}

		e.logger.Warn("Connection lost, reconnecting",
			zap.String("device", target.Name),
			zap.String("address", target.Address),
			zap.Error(err))
	}
}

// attach records conn as the live connection so Stop can close it.
// It returns nil, after closing conn, if stop was already raised.
func (e *Engine) attach(ctx context.Context, conn domain.Connection) *onceCloser {
	tracked := &onceCloser{Connection: conn}

	e.mu.Lock()
	defer e.mu.Unlock()

	if ctx.Err() != nil {
		if err := tracked.Close(); err != nil {
			e.logger.Warn("Failed to close connection", zap.Error(err))
		}
		return nil
	}
	e.conn = tracked
	return tracked
}

// detach closes the finished connection and forgets it
func (e *Engine) detach(tracked *onceCloser) {
	e.mu.Lock()
	if e.conn == tracked {
		e.conn = nil
	}
	e.mu.Unlock()

	if err := tracked.Close(); err != nil {
		e.logger.Warn("Failed to close connection", zap.Error(err))
	}
}

// Stop raises the stop signal, closes the live connection and waits for the
// worker to exit. Calling it more than once is safe; a later call keeps
// waiting for a worker an earlier call gave up on.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	if e.done == nil {
		e.mu.Unlock()
		return nil
	}
	raised := e.cancel != nil
	if raised {
		e.cancel()
		e.cancel = nil
	}
	conn := e.conn
	done := e.done
	e.mu.Unlock()

	if raised {
		e.logger.Info("Engine stopping...")
	}

	var err error
	if conn != nil {
		err = conn.Close()
	}

	select {
	case <-done:
	case <-ctx.Done():
		return multierr.Append(err, ctx.Err())
	}

	if raised {
		e.logger.Info("Engine stopped")
	}
	return err
}

// onceCloser closes the wrapped connection exactly once. Later calls return nil.
type onceCloser struct {
	domain.Connection
	once sync.Once
}

func (c *onceCloser) Close() error {
	var err error
	c.once.Do(func() {
		err = c.Connection.Close()
	})
	return err
}
