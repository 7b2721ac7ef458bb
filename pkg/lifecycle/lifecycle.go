// Package lifecycle coordinates subsystem startup and shutdown.
// Subsystems register hooks with a Coordinator; the application drives
// startup readiness and graceful shutdown through a single handle.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Coordinator tracks startup and shutdown hooks for all subsystems.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	startup []func()

	shutdown sync.WaitGroup
	ready    atomic.Bool
}

// New creates a Coordinator with a root context that is cancelled on Shutdown.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the coordinator's root context. It is cancelled when
// Shutdown begins, signalling registered shutdown hooks to proceed.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// Ready reports whether startup has completed.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// OnStartup registers a function to run during WaitForStartup.
func (c *Coordinator) OnStartup(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startup = append(c.startup, fn)
}

// OnShutdown registers a shutdown hook. The hook runs in its own goroutine
// and should block on Context().Done() before performing cleanup.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdown.Add(1)
	go func() {
		defer c.shutdown.Done()
		fn()
	}()
}

// WaitForStartup runs all registered startup functions in registration order
// and marks the coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.mu.Lock()
	fns := c.startup
	c.startup = nil
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}

	c.ready.Store(true)
}

// Shutdown cancels the root context and waits for all shutdown hooks to
// complete. Returns an error if the hooks do not finish within the timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdown.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %s", timeout)
	}
}

// ReadinessChecker reports whether the application has completed startup.
type ReadinessChecker interface {
	Ready() bool
}
