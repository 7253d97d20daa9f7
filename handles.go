package localsystem

import (
	"errors"
	"fmt"
)

type trackedHandle struct {
	name   string
	handle Handle
}

// handleScope owns a set of open handles and closes each exactly once.
// Close failures are collected and returned by the next closeAll.
// It is not safe for concurrent use.
type handleScope struct {
	sys  System
	open []trackedHandle
	errs []error
}

func newHandleScope(sys System) *handleScope {
	return &handleScope{sys: sys}
}

// track records h as owned by the scope and returns it.
func (s *handleScope) track(name string, h Handle) Handle {
	s.open = append(s.open, trackedHandle{name: name, handle: h})
	return h
}

// close closes the given handles now and stops tracking them.
// Handles the scope does not own are ignored.
func (s *handleScope) close(handles ...Handle) {
	for _, h := range handles {
		for i, t := range s.open {
			if t.handle != h {
				continue
			}
			s.open = append(s.open[:i], s.open[i+1:]...)
			s.closeOne(t)
			break
		}
	}
}

func (s *handleScope) closeOne(t trackedHandle) {
	if err := s.sys.CloseHandle(t.handle); err != nil {
		s.errs = append(s.errs, fmt.Errorf("close %s: %w", t.name, err))
	}
}

// adopt moves every handle owned by other, and its pending close
// failures, into s. other is left empty.
func (s *handleScope) adopt(other *handleScope) {
	s.open = append(s.open, other.open...)
	s.errs = append(s.errs, other.errs...)
	other.open, other.errs = nil, nil
}

// closeAll closes every owned handle, most recently acquired first, and
// returns every close failure since the previous closeAll.
func (s *handleScope) closeAll() error {
	for i := len(s.open) - 1; i >= 0; i-- {
		s.closeOne(s.open[i])
	}
	s.open = nil
	err := errors.Join(s.errs...)
	s.errs = nil
	return err
}

func (s *handleScope) len() int {
	return len(s.open)
}
