package fbo

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("WithAttrs() did not return nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup() did not return nopHandler")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	drv := newFakeDriver()
	ctx := newTestContext(t, drv)
	color := newFakeTexture(1, 4, 4)
	rt, err := NewSimpleRenderTarget(ctx, ColorTexture2D(color, 0))
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Release()

	if !strings.Contains(buf.String(), "simple render target created") {
		t.Errorf("expected creation log, got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestContextLoggerOverridesPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, err := NewContext(newFakeDriver(), WithLogger(l))
	if err != nil {
		t.Fatal(err)
	}
	rt, err := NewSimpleRenderTarget(ctx, ColorTexture2D(newFakeTexture(1, 2, 2), 0))
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Destroy(); err == nil {
		t.Fatal("Destroy() of referenced context succeeded")
	}
	rt.Release()

	if !strings.Contains(buf.String(), "destroy of referenced context refused") {
		t.Errorf("expected warning in context logger, got: %s", buf.String())
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 50

	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func TestProvisionalBitsLogToContextLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var pkgBuf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&pkgBuf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx, err := NewContext(newFakeDriver(), WithLogger(l))
	if err != nil {
		t.Fatal(err)
	}

	depth := newFakeDepthTexture(2, 4, 4, gputypes.TextureFormatUndefined)
	rt, err := NewSimpleRenderTargetWithDepth(ctx, ColorTexture2D(newFakeTexture(1, 4, 4), 0), DepthTexture2D(depth, 0))
	if err != nil {
		t.Fatal(err)
	}
	rt.Release()

	if !strings.Contains(buf.String(), "provisional bit depth") {
		t.Errorf("context logger missing provisional bit depth line: %s", buf.String())
	}
	if strings.Contains(pkgBuf.String(), "provisional bit depth") {
		t.Errorf("provisional bit depth logged to package logger: %s", pkgBuf.String())
	}
}
