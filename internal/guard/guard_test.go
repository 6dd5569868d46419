// ABOUTME: Tests for guarded execution helpers
// ABOUTME: Covers success passthrough, error fallback, panic recovery, and single invocation

package guard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecute_ReturnsResultOnSuccess(t *testing.T) {
	got := Execute(func() (string, error) { return "1", nil }, "fallback")
	assert.Equal(t, "1", got)
}

func TestExecute_ReturnsEmptyResultUnchanged(t *testing.T) {
	// A blank value from a successful read is not a failure
	got := Execute(func() (string, error) { return "", nil }, "fallback")
	assert.Equal(t, "", got)
}

func TestExecute_ReturnsFallbackOnError(t *testing.T) {
	got := Execute(func() (string, error) {
		return "partial", errors.New("permission denied")
	}, "fallback")
	assert.Equal(t, "fallback", got)
}

func TestExecute_RecoversPanic(t *testing.T) {
	tests := []struct {
		name  string
		panic any
	}{
		{"string", "boom"},
		{"error", errors.New("boom")},
		{"nil map write", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got int
			assert.NotPanics(t, func() {
				got = Execute(func() (int, error) {
					if tt.panic == nil {
						var m map[string]int
						m["x"] = 1
					}
					panic(tt.panic)
				}, 42)
			})
			assert.Equal(t, 42, got)
		})
	}
}

func TestExecute_InvokesOperationOnce(t *testing.T) {
	calls := 0
	Execute(func() (string, error) {
		calls++
		return "", errors.New("fail")
	}, "")
	assert.Equal(t, 1, calls)
}

func TestValue(t *testing.T) {
	assert.Equal(t, "v", Value(func() (string, bool) { return "v", true }, "fb"))
	assert.Equal(t, "fb", Value(func() (string, bool) { return "v", false }, "fb"))
	assert.Equal(t, "fb", Value(func() (string, bool) { panic("boom") }, "fb"))
}

func TestCall(t *testing.T) {
	assert.Equal(t, 29, Call(func() int { return 29 }, 0))
	assert.Equal(t, 0, Call(func() int { panic("no platform") }, 0))
}
