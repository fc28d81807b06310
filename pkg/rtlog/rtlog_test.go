package rtlog

import "testing"

func TestNewNop_DoesNotPanicOnLogCalls(t *testing.T) {
	l := NewNop()
	l.Infof("rendering %s at %dx%d", "default", 400, 225)
	l.Warnf("worker %d slow", 3)
	l.Errorf("scene construction failed: %v", "boom")

	if err := l.Sync(); err != nil {
		// A no-op core's Sync returns nil; this only records an
		// unexpected error, since only the absence of a panic is asserted.
		t.Logf("Sync returned %v", err)
	}
}

func TestWith_ReturnsUsableChildLogger(t *testing.T) {
	l := NewNop()
	child := l.With("scene", "cornell", "workers", 8)
	if child == nil {
		t.Fatal("With returned nil")
	}
	child.Infof("starting render")
}
