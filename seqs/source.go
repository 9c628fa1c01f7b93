package seqs

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/go-softwarelab/common/pkg/to"
)

// Release reasons reported to SourceMonitor.OnRelease.
const (
	ReleaseExhausted = "exhausted" // the source ran out of elements
	ReleaseAbandoned = "abandoned" // the consumer stopped pulling
	ReleaseFailed    = "failed"    // the source reported an error
)

// Cursor is a forward-only reader over a scoped resource, shaped like *sql.Rows.
type Cursor[T any] interface {
	Next() bool
	Value() T
	Err() error
	Close() error
}

// SourceErrHandler is called with every error raised while reading or releasing a source.
type SourceErrHandler func(error)

// SourceMonitor observes the lifecycle of resource-backed sources.
type SourceMonitor interface {
	// reason: ReleaseExhausted, ReleaseAbandoned or ReleaseFailed
	OnRelease(reason string, yielded int)
	OnError(err error)
}

type NoopSourceMonitor struct{}

func (NoopSourceMonitor) OnRelease(reason string, yielded int) {}
func (NoopSourceMonitor) OnError(err error)                    {}

// LogSourceMonitor writes source lifecycle events to a slog.Logger.
// A nil Logger discards them.
type LogSourceMonitor struct {
	Logger *slog.Logger
}

func (m LogSourceMonitor) logger() *slog.Logger {
	if m.Logger == nil {
		return silentLogger()
	}
	return m.Logger
}

func (m LogSourceMonitor) OnRelease(reason string, yielded int) {
	logger := m.logger()
	if !slogx.IsDebug(logger) {
		return
	}
	logger.Debug("source released", slog.String("reason", reason), slog.Int("yielded", yielded))
}

func (m LogSourceMonitor) OnError(err error) {
	m.logger().Error("source error", slog.Any("error", err))
}

// teeSourceMonitor forwards errors to both the monitor and the handler.
type teeSourceMonitor struct {
	monitor SourceMonitor
	handler SourceErrHandler
}

func (t teeSourceMonitor) OnRelease(reason string, yielded int) {
	t.monitor.OnRelease(reason, yielded)
}

func (t teeSourceMonitor) OnError(err error) {
	t.monitor.OnError(err)
	t.handler(err)
}

type SourceConfig struct {
	monitor      SourceMonitor
	errorHandler SourceErrHandler
}

type SourceOption = func(*SourceConfig)

// WithMonitor sets the monitor for the source.
func WithMonitor(m SourceMonitor) SourceOption {
	return func(cfg *SourceConfig) {
		cfg.monitor = m
	}
}

// WithLogger reports source events to logger through a LogSourceMonitor.
func WithLogger(logger *slog.Logger) SourceOption {
	return func(cfg *SourceConfig) {
		if logger == nil {
			logger = silentLogger()
		}
		cfg.monitor = LogSourceMonitor{Logger: logger}
	}
}

func WithErrorHandler(handler SourceErrHandler) SourceOption {
	if handler == nil {
		panic(nilArg("seqs.WithErrorHandler", "handler"))
	}
	return func(cfg *SourceConfig) {
		cfg.errorHandler = handler
	}
}

func silentLogger() *slog.Logger {
	return slogx.NewBuilder().Silent().Logger()
}

func newSourceMonitor(opts []SourceOption) SourceMonitor {
	cfg := to.OptionsWithDefault(SourceConfig{}, opts...)
	monitor := cfg.monitor
	if monitor == nil {
		// silent by default, library code must not write to stdout
		monitor = NoopSourceMonitor{}
	}
	if cfg.errorHandler != nil {
		monitor = teeSourceMonitor{monitor: monitor, handler: cfg.errorHandler}
	}
	return monitor
}

// FromCursor yields the values of c and closes it exactly once, when the cursor is
// exhausted, when it fails, or when the consumer stops early.
//
// A cursor can only be read once: ranging over the result a second time yields nothing.
// Errors from c.Err and c.Close are reported through the configured monitor and error handler.
func FromCursor[T any](c Cursor[T], opts ...SourceOption) iter.Seq[T] {
	if c == nil {
		return IfAny[T](nil)
	}
	monitor := newSourceMonitor(opts)
	consumed := false
	return func(yield func(T) bool) {
		if consumed {
			return
		}
		consumed = true

		reason := ReleaseAbandoned
		yielded := 0
		defer func() {
			if err := c.Close(); err != nil {
				monitor.OnError(fmt.Errorf("seqs.FromCursor: close: %w", err))
			}
			monitor.OnRelease(reason, yielded)
		}()

		for c.Next() {
			yielded++
			if !yield(c.Value()) {
				return
			}
		}
		if err := c.Err(); err != nil {
			reason = ReleaseFailed
			monitor.OnError(fmt.Errorf("seqs.FromCursor: %w", err))
			return
		}
		reason = ReleaseExhausted
	}
}

// Using acquires a resource for every enumeration, yields the elements body reads from it,
// and closes the resource when the enumeration ends, including when the consumer stops early
// or body panics.
//
// If acquire fails the sequence is empty and the error is reported through the monitor.
func Using[R io.Closer, T any](acquire func() (R, error), body func(R) iter.Seq[T], opts ...SourceOption) iter.Seq[T] {
	if acquire == nil {
		panic(nilArg("seqs.Using", "acquire"))
	}
	if body == nil {
		panic(nilArg("seqs.Using", "body"))
	}
	monitor := newSourceMonitor(opts)
	return func(yield func(T) bool) {
		res, err := acquire()
		if err != nil {
			monitor.OnError(fmt.Errorf("seqs.Using: acquire: %w", err))
			return
		}

		reason := ReleaseAbandoned
		yielded := 0
		defer func() {
			if err := res.Close(); err != nil {
				monitor.OnError(fmt.Errorf("seqs.Using: close: %w", err))
			}
			monitor.OnRelease(reason, yielded)
		}()

		for v := range IfAny(body(res)) {
			yielded++
			if !yield(v) {
				return
			}
		}
		reason = ReleaseExhausted
	}
}

// ErrSourceClosed is returned by cursors read after Close.
var ErrSourceClosed = errors.New("source closed")

// SliceCursor is an in-memory Cursor, mostly useful in tests and examples.
type SliceCursor[T any] struct {
	items  []T
	pos    int
	closed bool
	err    error
	// OnClose, if set, is called on every Close.
	OnClose func()
}

func NewSliceCursor[T any](items ...T) *SliceCursor[T] {
	return &SliceCursor[T]{items: items, pos: -1}
}

// FailAfter makes the cursor stop with err once n items were read.
func (c *SliceCursor[T]) FailAfter(n int, err error) *SliceCursor[T] {
	if n < len(c.items) {
		c.items = c.items[:n]
	}
	c.err = err
	return c
}

func (c *SliceCursor[T]) Next() bool {
	if c.closed {
		return false
	}
	c.pos++
	return c.pos < len(c.items)
}

func (c *SliceCursor[T]) Value() T {
	return c.items[c.pos]
}

func (c *SliceCursor[T]) Err() error {
	if c.closed && c.pos < len(c.items) {
		return ErrSourceClosed
	}
	return c.err
}

func (c *SliceCursor[T]) Close() error {
	if c.OnClose != nil {
		c.OnClose()
	}
	if c.closed {
		return ErrSourceClosed
	}
	c.closed = true
	return nil
}

// Closed reports whether Close was called.
func (c *SliceCursor[T]) Closed() bool {
	return c.closed
}

var _ Cursor[int] = (*SliceCursor[int])(nil)
