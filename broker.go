package localsystem

import "errors"

var errBrokerOrder = errors.New("token broker: previous step did not complete")

// TokenBroker turns the token of a trusted process into a primary token
// that can start a new process under the same identity.
//
// The three steps run in order. When a step fails, every handle the broker
// opened is closed before the error is returned, so a failed broker never
// holds anything. A TokenBroker is single use.
type TokenBroker struct {
	sys     System
	handles *handleScope

	process Handle // trusted process, PROCESS_QUERY_INFORMATION
	source  Handle // its token, TOKEN_DUPLICATE
	primary Handle // duplicated primary token
}

// NewTokenBroker returns a broker for a caller that has enabled a privilege
// (normally DebugPrivilege) on its own token.
func NewTokenBroker(sys System, capability Capability) (*TokenBroker, error) {
	if !capability.Enabled() {
		return nil, ErrNoCapability
	}
	return &TokenBroker{sys: sys, handles: newHandleScope(sys)}, nil
}

// OpenTrustedProcess opens the process with query-information access only.
func (b *TokenBroker) OpenTrustedProcess(pid uint32) error {
	h, err := b.sys.OpenProcess(pid)
	if err != nil {
		return b.fail(platformError("OpenProcess", err))
	}
	b.process = b.handles.track("trusted process", h)
	return nil
}

// OpenSourceToken opens the trusted process token for duplication only.
func (b *TokenBroker) OpenSourceToken() error {
	if b.process == 0 {
		return b.fail(errBrokerOrder)
	}
	h, err := b.sys.OpenProcessToken(b.process)
	if err != nil {
		return b.fail(platformError("OpenProcessToken", err))
	}
	b.source = b.handles.track("source token", h)
	return nil
}

// DuplicatePrimary duplicates the source token into a primary token with
// maximum allowed access at SecurityImpersonation level.
func (b *TokenBroker) DuplicatePrimary() (Handle, error) {
	if b.source == 0 {
		return 0, b.fail(errBrokerOrder)
	}
	h, err := b.sys.DuplicateToken(b.source)
	if err != nil {
		return 0, b.fail(platformError("DuplicateTokenEx", err))
	}
	b.primary = b.handles.track("impersonation token", h)
	return b.primary, nil
}

// Acquire runs all three steps for pid and returns the primary token.
// The token stays valid until Close.
func (b *TokenBroker) Acquire(pid uint32) (Handle, error) {
	if err := b.OpenTrustedProcess(pid); err != nil {
		return 0, err
	}
	if err := b.OpenSourceToken(); err != nil {
		return 0, err
	}
	return b.DuplicatePrimary()
}

// Close releases every handle the broker still owns.
func (b *TokenBroker) Close() error {
	b.process, b.source, b.primary = 0, 0, 0
	return b.handles.closeAll()
}

// fail releases everything opened so far and returns err. A close failure
// is not allowed to hide the original error.
func (b *TokenBroker) fail(err error) error {
	if closeErr := b.Close(); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	return err
}

// release hands ownership of the broker's handles to scope.
func (b *TokenBroker) release(scope *handleScope) {
	scope.adopt(b.handles)
}
