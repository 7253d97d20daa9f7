package localsystem

import (
	"errors"
	"strings"
	"testing"
)

func TestHandleScopeClosesEachHandleOnce(t *testing.T) {
	sys := newFakeSystem()
	scope := newHandleScope(sys)

	scope.track("a", sys.alloc("a"))
	b := scope.track("b", sys.alloc("b"))
	scope.track("c", sys.alloc("c"))

	scope.close(b)
	scope.close(b)
	if sys.badCloses != 0 {
		t.Fatalf("second close(b) touched the system")
	}
	if scope.len() != 2 {
		t.Errorf("len = %d, want 2", scope.len())
	}

	if err := scope.closeAll(); err != nil {
		t.Fatalf("closeAll: %v", err)
	}
	if err := scope.closeAll(); err != nil {
		t.Fatalf("second closeAll: %v", err)
	}
	if sys.openCount() != 0 || sys.badCloses != 0 {
		t.Errorf("open = %d, bad closes = %d", sys.openCount(), sys.badCloses)
	}
}

func TestHandleScopeClosesInReverseOrder(t *testing.T) {
	sys := newFakeSystem()
	scope := newHandleScope(sys)
	first := scope.track("first", sys.alloc("first"))
	second := scope.track("second", sys.alloc("second"))

	if err := scope.closeAll(); err != nil {
		t.Fatalf("closeAll: %v", err)
	}
	if len(sys.closed) != 2 || sys.closed[0] != second || sys.closed[1] != first {
		t.Errorf("close order = %v, want [%v %v]", sys.closed, second, first)
	}
}

func TestHandleScopeCloseErrorDoesNotStopTheRest(t *testing.T) {
	sys := newFakeSystem()
	scope := newHandleScope(sys)
	stale := scope.track("stale", sys.alloc("stale"))
	scope.track("live", sys.alloc("live"))
	delete(sys.open, stale)

	if err := scope.closeAll(); err == nil {
		t.Fatal("closeAll did not report the stale handle")
	}
	if sys.openCount() != 0 {
		t.Errorf("live handle left open")
	}
}

func TestHandleScopeReportsEarlyCloseFailures(t *testing.T) {
	sys := newFakeSystem()
	scope := newHandleScope(sys)
	h := scope.track("snapshot", sys.alloc("snapshot"))
	scope.track("token", sys.alloc("token"))

	sys.fail["CloseHandle"] = errInvalidHandle
	scope.close(h)
	delete(sys.fail, "CloseHandle")

	err := scope.closeAll()
	if !errors.Is(err, errInvalidHandle) || !strings.Contains(err.Error(), "close snapshot") {
		t.Fatalf("closeAll = %v, want the snapshot close failure", err)
	}
	if err := scope.closeAll(); err != nil {
		t.Errorf("failure reported twice: %v", err)
	}
	if sys.openCount() != 0 {
		t.Errorf("%d handles left open", sys.openCount())
	}
}

func TestHandleScopeAdopt(t *testing.T) {
	sys := newFakeSystem()
	parent := newHandleScope(sys)
	child := newHandleScope(sys)
	child.track("x", sys.alloc("x"))
	child.track("y", sys.alloc("y"))

	parent.adopt(child)
	if child.len() != 0 || parent.len() != 2 {
		t.Fatalf("after adopt: child %d, parent %d", child.len(), parent.len())
	}
	if err := child.closeAll(); err != nil {
		t.Fatalf("child.closeAll: %v", err)
	}
	if sys.openCount() != 2 {
		t.Fatalf("child closed adopted handles")
	}
	if err := parent.closeAll(); err != nil {
		t.Fatalf("parent.closeAll: %v", err)
	}
	if sys.openCount() != 0 || sys.badCloses != 0 {
		t.Errorf("open = %d, bad closes = %d", sys.openCount(), sys.badCloses)
	}
}
