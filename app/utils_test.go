package app

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	actx "github.com/Pigges/json-extractor/app/context"
)

type testApp struct {
	*App
	fs             vfs.FileSystem
	stdout, stderr *safeBuffer
	env            *mockEnv
}

func newTestApp(ctx context.Context, opts ...Option) (*testApp, error) {
	var (
		fs             = memoryfs.New()
		stdout, stderr = newSafeBuffer(), newSafeBuffer()
		env            = &mockEnv{env: map[string]string{}}
	)

	opts = append([]Option{
		WithEnv(env),
		WithContext(ctx),
		WithFDs(strings.NewReader(""), stdout, stderr),
		WithFS(fs),
		WithLogger(false),
		WithVersion("v0.0.0-test"),
	}, opts...)
	app, err := New("json-extractor", "/config.json", opts...)
	if err != nil {
		return nil, err
	}

	return &testApp{App: app, fs: fs, stdout: stdout, stderr: stderr, env: env}, nil
}

func (ta *testApp) Run(args ...string) error {
	return ta.App.Run(args)
}

func (ta *testApp) writeConfig(data string) error {
	return vfs.WriteFile(ta.fs, "/config.json", []byte(data), 0o644) //nolint:wrapcheck // Test helper.
}

type mockEnv struct {
	mx  sync.RWMutex
	env map[string]string
}

var _ actx.Environment = (*mockEnv)(nil)

func (me *mockEnv) Lookup(key string) (string, bool) {
	me.mx.RLock()
	defer me.mx.RUnlock()
	v, ok := me.env[key]
	return v, ok
}

func (me *mockEnv) Set(key, val string) {
	me.mx.Lock()
	defer me.mx.Unlock()
	me.env[key] = val
}

// waitFor polls buf until the regex pattern matches, and returns the
// submatch at matchIdx. It returns an empty string if ctx is done first.
func waitFor(ctx context.Context, buf *safeBuffer, rxPat string, matchIdx int) string {
	rx := regexp.MustCompile(rxPat)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		if match := rx.FindStringSubmatch(buf.String()); len(match) > matchIdx {
			return match[matchIdx]
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ""
		}
	}
}

// newTestContext returns a context that times out after timeout, and an
// assertion handling function that cancels the context prematurely and fails
// the test if the assertion fails. This is done to avoid waiting for the
// context timeout to be reached.
func newTestContext(t *testing.T, timeout time.Duration) (
	ctx context.Context, cancelCtx func(), assertHandler func(bool),
) {
	ctx, cancelCtx = context.WithTimeout(t.Context(), timeout)
	assertHandler = func(success bool) {
		if !success {
			cancelCtx()
			t.FailNow()
		}
	}

	return
}

// safeBuffer is a thread-safe buffer.
type safeBuffer struct {
	mx  sync.RWMutex
	buf *bytes.Buffer
}

var _ io.Writer = (*safeBuffer)(nil)

func newSafeBuffer() *safeBuffer {
	return &safeBuffer{buf: &bytes.Buffer{}}
}

func (b *safeBuffer) Write(p []byte) (n int, err error) {
	b.mx.Lock()
	defer b.mx.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return b.buf.String()
}
