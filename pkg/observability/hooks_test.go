package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGeneratorHooks{}
	g.OnEnumerateComplete(ctx, 3, 64, 12, time.Millisecond)
	g.OnTick(ctx, 1, 0)
	g.OnRankComplete(ctx, 3, 12, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Generator().(NoopGeneratorHooks); !ok {
		t.Error("Generator() should return NoopGeneratorHooks by default")
	}

	custom := &testGeneratorHooks{}
	SetGeneratorHooks(custom)
	if Generator() != custom {
		t.Error("SetGeneratorHooks should set custom hooks")
	}

	Reset()
	if _, ok := Generator().(NoopGeneratorHooks); !ok {
		t.Error("Reset() should restore NoopGeneratorHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGeneratorHooks{}
	SetGeneratorHooks(custom)

	// Setting nil should be ignored
	SetGeneratorHooks(nil)

	if Generator() != custom {
		t.Error("SetGeneratorHooks(nil) should be ignored")
	}

	Reset()
}

type testGeneratorHooks struct{ NoopGeneratorHooks }
