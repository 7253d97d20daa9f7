package localsystem

import (
	"errors"
	"log/slog"
)

// State is a point in the launch sequence.
type State int

const (
	Start State = iota
	SelfTokenOpened
	PrivilegeElevated
	TrustedProcessFound
	TrustedProcessOpened
	SourceTokenOpened
	ImpersonationTokenReady
	ProcessLaunched
	Done
	Failed
)

var stateNames = [...]string{
	Start:                   "Start",
	SelfTokenOpened:         "SelfTokenOpened",
	PrivilegeElevated:       "PrivilegeElevated",
	TrustedProcessFound:     "TrustedProcessFound",
	TrustedProcessOpened:    "TrustedProcessOpened",
	SourceTokenOpened:       "SourceTokenOpened",
	ImpersonationTokenReady: "ImpersonationTokenReady",
	ProcessLaunched:         "ProcessLaunched",
	Done:                    "Done",
	Failed:                  "Failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(?)"
	}
	return stateNames[s]
}

// Result is the outcome of Runner.Run.
type Result struct {
	State State
	PID   uint32 // launched process, when State is Done
}

// Runner executes the launch sequence. It keeps no state between runs, so
// a Runner can be reused; every run opens and closes its own handles.
type Runner struct {
	sys      System
	cfg      Config
	reporter *Reporter
}

// New creates a Runner on top of sys.
func New(sys System, opts ...Option) *Runner {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		sys:      sys,
		cfg:      cfg,
		reporter: NewReporter(cfg.Output, sys, cfg.Styles),
	}
}

// step is one transition of the launch sequence.
type step struct {
	name   string
	target State
	action func() error
}

// launch holds the values one run passes between its steps.
type launch struct {
	argv       []string
	handles    *handleScope
	selfToken  Handle
	capability Capability
	pid        uint32
	broker     *TokenBroker
	token      Handle
	info       ProcessInfo
}

// Run launches argv under the trusted process's identity.
//
// Exactly one line is written to the configured output: the success
// confirmation or the failure. On failure the error is a *Failure. Every
// handle opened by the run is closed before Run returns.
func (r *Runner) Run(argv []string) (Result, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Result{State: Failed}, ErrNoCommand
	}

	log := r.cfg.Logger
	l := &launch{argv: argv, handles: newHandleScope(r.sys)}
	defer func() {
		if err := l.handles.closeAll(); err != nil {
			log.Warn("closing handles", "error", err)
		}
	}()

	log.Debug("launch requested",
		"program", argv[0],
		"trusted_process", r.cfg.ProcessName,
		"elevated", r.sys.IsElevated(),
	)

	state := Start
	for _, s := range r.steps(l) {
		if err := s.action(); err != nil {
			log.Debug("state transition", "from", state, "to", Failed, "step", s.name, "error", err)
			r.report(err)
			return Result{State: Failed}, &Failure{State: state, Step: s.name, Err: err}
		}
		log.Debug("state transition", "from", state, "to", s.target, "step", s.name)
		state = s.target
	}

	log.Debug("state transition", "from", state, "to", Done, "pid", l.info.PID)
	r.reporter.Success("launch.success")
	return Result{State: Done, PID: l.info.PID}, nil
}

func (r *Runner) steps(l *launch) []step {
	return []step{
		{"open self token", SelfTokenOpened, func() error {
			h, err := r.sys.OpenCurrentProcessToken()
			if err != nil {
				return platformError("OpenProcessToken", err)
			}
			l.selfToken = l.handles.track("self token", h)
			return nil
		}},
		{"enable " + r.cfg.Privilege, PrivilegeElevated, func() error {
			c, err := EnablePrivilege(r.sys, l.selfToken, r.cfg.Privilege, true)
			if err != nil {
				return err
			}
			l.capability = c
			return nil
		}},
		{"locate " + r.cfg.ProcessName, TrustedProcessFound, func() error {
			pid, err := findProcess(l.handles, r.cfg.ProcessName)
			if err != nil {
				return err
			}
			l.pid = pid
			r.cfg.Logger.Debug("trusted process found", "name", r.cfg.ProcessName, "pid", pid)
			return nil
		}},
		{"open trusted process", TrustedProcessOpened, func() error {
			b, err := NewTokenBroker(r.sys, l.capability)
			if err != nil {
				return err
			}
			l.broker = b
			return b.OpenTrustedProcess(l.pid)
		}},
		{"open source token", SourceTokenOpened, func() error {
			return l.broker.OpenSourceToken()
		}},
		{"duplicate token", ImpersonationTokenReady, func() error {
			token, err := l.broker.DuplicatePrimary()
			if err != nil {
				return err
			}
			l.token = token
			l.broker.release(l.handles)
			return nil
		}},
		{"launch process", ProcessLaunched, func() error {
			info, err := LaunchProcess(r.sys, l.token, l.argv)
			if err != nil {
				return err
			}
			l.info = info
			l.handles.track("new process", info.Process)
			l.handles.track("new thread", info.Thread)
			// The new process is not waited on.
			l.handles.close(info.Process, info.Thread)
			return nil
		}},
	}
}

// report prints the single failure line for err.
func (r *Runner) report(err error) {
	var platformErr *PlatformError
	switch {
	case errors.As(err, &platformErr):
		r.reporter.PlatformFailure(platformErr.Op, platformErr.Err)
	case errors.Is(err, ErrProcessNotFound):
		r.reporter.Failure("error.process_not_found", r.cfg.ProcessName)
	case errors.Is(err, ErrPrivilegeNotHeld):
		// A non-elevated console is the usual cause.
		hint := ""
		if !r.sys.IsElevated() {
			hint = "hint.elevate"
		}
		r.reporter.FailureWithHint("error.privilege_not_held", hint, r.cfg.Privilege)
	default:
		r.reporter.Failure("error.unexpected", err)
	}
}
