package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fieldsign/fieldsign/pkg/lifecycle"
)

func TestCoordinator_NotReadyBeforeStartup(t *testing.T) {
	lc := lifecycle.New()

	if lc.Ready() {
		t.Error("Ready() = true before WaitForStartup, want false")
	}
}

func TestCoordinator_StartupHooksRunInOrder(t *testing.T) {
	lc := lifecycle.New()

	var order []int
	lc.OnStartup(func() { order = append(order, 1) })
	lc.OnStartup(func() { order = append(order, 2) })
	lc.OnStartup(func() { order = append(order, 3) })

	lc.WaitForStartup()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("startup order = %v, want [1 2 3]", order)
	}

	if !lc.Ready() {
		t.Error("Ready() = false after WaitForStartup, want true")
	}
}

func TestCoordinator_ShutdownCancelsContext(t *testing.T) {
	lc := lifecycle.New()

	select {
	case <-lc.Context().Done():
		t.Fatal("context cancelled before Shutdown")
	default:
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context not cancelled after Shutdown")
	}
}

func TestCoordinator_ShutdownWaitsForHooks(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(10 * time.Millisecond)
		cleaned.Store(true)
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if !cleaned.Load() {
		t.Error("shutdown hook did not complete before Shutdown returned")
	}
}

func TestCoordinator_ShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		<-release
	})

	err := lc.Shutdown(20 * time.Millisecond)
	close(release)

	if err == nil {
		t.Error("Shutdown() succeeded with blocked hook, want timeout error")
	}
}
