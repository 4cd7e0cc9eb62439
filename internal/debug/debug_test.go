package debug

import (
	"context"
	"testing"
)

func TestWithDebug(t *testing.T) {
	ctx := context.Background()
	if IsEnabled(ctx) {
		t.Error("debug must default to off")
	}
	if !IsEnabled(WithDebug(ctx, true)) {
		t.Error("debug not enabled")
	}
	if IsEnabled(WithDebug(WithDebug(ctx, true), false)) {
		t.Error("inner value must win")
	}
}
