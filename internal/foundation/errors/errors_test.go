package errors

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedError_ErrorString(t *testing.T) {
	err := NewError(CategoryHugo, "render failed").Build()
	assert.Equal(t, "[hugo:error] render failed", err.Error())

	wrapped := WrapError(fmt.Errorf("exit status 1"), CategoryHugo, "render failed").Fatal().Build()
	assert.Equal(t, "[hugo:fatal] render failed: exit status 1", wrapped.Error())
	assert.True(t, wrapped.IsFatal())
}

func TestAsClassified_FindsErrorInChain(t *testing.T) {
	base := ValidationError("bad title").Build()
	wrapped := fmt.Errorf("load: %w", base)

	got, ok := AsClassified(wrapped)
	require.True(t, ok)
	assert.Equal(t, CategoryValidation, got.Category())
	assert.True(t, HasCategory(wrapped, CategoryValidation))
	assert.Equal(t, CategoryInternal, GetCategory(errors.New("plain")))
}

func TestClassifiedError_WithContextDoesNotMutate(t *testing.T) {
	orig := NewError(CategoryConfig, "missing").WithContext("path", "a.yaml").Build()
	extended := orig.WithContext("line", 3)

	_, ok := orig.Context().Get("line")
	assert.False(t, ok)
	v, ok := extended.Context().GetString("path")
	assert.True(t, ok)
	assert.Equal(t, "a.yaml", v)
}

func TestClassifiedError_Is(t *testing.T) {
	a := NewError(CategoryLinks, "broken links").Build()
	b := NewError(CategoryLinks, "broken links").WithContext("count", 2).Build()
	assert.ErrorIs(t, fmt.Errorf("wrap: %w", a), b)
	assert.NotErrorIs(t, a, NewError(CategoryConfig, "broken links").Build())
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("x").Build(), expected: 2},
		{name: "links", err: NewError(CategoryLinks, "x").Build(), expected: 3},
		{name: "config", err: ConfigError("x").Build(), expected: 7},
		{name: "hugo", err: HugoError("x").Build(), expected: 11},
		{name: "wrapped filesystem", err: fmt.Errorf("ctx: %w", FileSystemError("x").Build()), expected: 11},
		{name: "unclassified", err: errors.New("boom"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	err := ConfigError("config file not found").WithContext("path", "docsite.yaml").Build()

	quiet := NewCLIErrorAdapter(false, nil)
	assert.Equal(t, "Error: config file not found", quiet.FormatError(err))
	assert.Equal(t, "Internal error occurred (use -v for details)", quiet.FormatError(InternalError("x").Build()))
	assert.Equal(t, "Error: boom", quiet.FormatError(errors.New("boom")))

	verbose := NewCLIErrorAdapter(true, nil)
	assert.Equal(t, "[config:fatal] config file not found (path=docsite.yaml)", verbose.FormatError(err))
}

func TestCLIErrorAdapter_LogUsesSeverity(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewCLIErrorAdapter(false, logger)

	adapter.Log(NewError(CategoryLinks, "stale link").Warning().Build())
	out := buf.String()
	assert.True(t, strings.Contains(out, "level=WARN"), out)
	assert.True(t, strings.Contains(out, "category=links"), out)
}
