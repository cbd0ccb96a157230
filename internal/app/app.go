package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ibeckermayer/judgmentroutingbot/internal/agent"
	"github.com/ibeckermayer/judgmentroutingbot/internal/auth"
	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
	"github.com/ibeckermayer/judgmentroutingbot/internal/metrics"
	"github.com/ibeckermayer/judgmentroutingbot/internal/scheduler"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

var (
	// ErrNotInitialized is returned by actions that need a successful Initialize
	ErrNotInitialized = errors.New("agent not initialized")
	// ErrMissingAPIKey is returned by Initialize when no key is configured
	ErrMissingAPIKey = errors.New("MOLTBOOK_API_KEY is required; register first or set it in the environment")
	// ErrAlreadyRunning is returned by Run when a loop is already active
	ErrAlreadyRunning = errors.New("agent already running")
	// ErrMissingName is returned by RegisterAgent without a name
	ErrMissingName = errors.New("agent name is required")
)

// Platform is everything the service needs from the platform client
type Platform interface {
	agent.Platform
	auth.Registrar
	HasCredentials() bool
	Status(ctx context.Context) (*types.AgentStatus, error)
	Profile(ctx context.Context) (*types.AgentProfile, error)
	Heartbeat(ctx context.Context) (string, error)
}

// App holds the application state.
type App struct {
	// immutable after creation
	cfg       *config.Config
	platform  Platform
	agent     *agent.Agent
	scheduler *scheduler.Scheduler
	creds     *auth.Manager
	log       logrus.FieldLogger
	metrics   *metrics.Metrics
	now       func() time.Time

	mu            sync.RWMutex
	running       bool
	initialized   bool
	cancel        context.CancelFunc
	claimStatus   string
	profile       *types.AgentProfile
	setup         *agent.SetupReport
	lastHeartbeat time.Time
	lastCycle     *agent.CycleReport
}

// snapshot holds the mutable fields.
// Use getSnapshot() to obtain a consistent, point-in-time copy.
type snapshot struct {
	running       bool
	initialized   bool
	claimStatus   string
	profile       *types.AgentProfile
	setup         *agent.SetupReport
	lastHeartbeat time.Time
	lastCycle     *agent.CycleReport
}

// getSnapshot returns a snapshot of mutable fields under read lock.
func (a *App) getSnapshot() snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return snapshot{
		running:       a.running,
		initialized:   a.initialized,
		claimStatus:   a.claimStatus,
		profile:       a.profile,
		setup:         a.setup,
		lastHeartbeat: a.lastHeartbeat,
		lastCycle:     a.lastCycle,
	}
}

// Option customizes an App
type Option func(*App)

// WithCredentials stores keys from registrations made through the service
func WithCredentials(m *auth.Manager) Option {
	return func(a *App) { a.creds = m }
}

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *App) { a.metrics = m }
}

// WithClock sets the clock used for heartbeat bookkeeping
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New creates a new App instance.
func New(cfg *config.Config, p Platform, ag *agent.Agent, sched *scheduler.Scheduler, logger logrus.FieldLogger, opts ...Option) *App {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	a := &App{
		cfg:       cfg,
		platform:  p,
		agent:     ag,
		scheduler: sched,
		log:       logger.WithField("component", "app"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Agent returns the engagement agent
func (a *App) Agent() *agent.Agent {
	return a.agent
}

// Initialize probes the platform and runs the initial setup. A missing key
// or failing status probe is fatal; setup problems are only logged.
func (a *App) Initialize(ctx context.Context) error {
	if !a.platform.HasCredentials() {
		return ErrMissingAPIKey
	}

	status, err := a.platform.Status(ctx)
	if err != nil {
		return fmt.Errorf("status probe: %w", err)
	}
	if status.PendingClaim() {
		a.log.Warn("agent is pending claim; the owner must open the claim URL before it can act")
	}

	profile, err := a.platform.Profile(ctx)
	if err != nil {
		a.log.WithError(err).Warn("failed to fetch profile")
	} else {
		a.log.WithFields(logrus.Fields{
			"name":  profile.Name,
			"karma": profile.Karma,
		}).Info("connected to moltbook")
	}

	setup, err := a.agent.Setup(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.log.WithError(err).Warn("setup finished with errors")
	}

	a.mu.Lock()
	a.claimStatus = status.Status
	a.profile = profile
	a.setup = setup
	a.initialized = true
	a.mu.Unlock()

	a.log.Info("agent initialized")
	return nil
}

// Run checks the heartbeat, starts the heartbeat job and the cycle loop and
// blocks until ctx is done or Stop is called. Cycles never overlap.
func (a *App) Run(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.mu.Lock()
	switch {
	case !a.initialized:
		a.mu.Unlock()
		return ErrNotInitialized
	case a.running:
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	a.running = true
	a.cancel = cancel
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.running = false
		a.cancel = nil
		a.mu.Unlock()
	}()

	// check once now, then on the interval
	_ = a.scheduler.RunNow(loopCtx, "heartbeat", a.CheckHeartbeat)
	if err := a.scheduler.AddIntervalJob("heartbeat", a.cfg.Behavior.HeartbeatInterval.Std(), a.CheckHeartbeat); err != nil {
		return err
	}
	a.scheduler.Start()
	defer func() { <-a.scheduler.Stop().Done() }()

	a.log.WithFields(logrus.Fields{
		"cycle_interval": a.cfg.Behavior.CycleInterval.String(),
		"post_interval":  a.cfg.Behavior.PostInterval().String(),
	}).Info("agent started")

	err := a.scheduler.RunLoop(loopCtx, "cycle", a.cfg.Behavior.StartupDelay.Std(), a.cfg.Behavior.CycleInterval.Std(), a.runCycle)
	a.log.Info("agent stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Stop flips the running flag and cancels the loop. In-flight calls finish.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.running = false
	if a.cancel != nil {
		a.cancel()
	}
}

// IsRunning reports whether the cycle loop is active
func (a *App) IsRunning() bool {
	return a.getSnapshot().running
}

func (a *App) runCycle(ctx context.Context) error {
	if !a.IsRunning() {
		return nil
	}
	report, err := a.agent.RunCycle(ctx)
	a.mu.Lock()
	a.lastCycle = report
	a.mu.Unlock()
	return err
}

// CheckHeartbeat fetches the liveness document and records when it succeeded
func (a *App) CheckHeartbeat(ctx context.Context) error {
	doc, err := a.platform.Heartbeat(ctx)
	if a.metrics != nil {
		a.metrics.Heartbeat(err)
	}
	if err != nil {
		return fmt.Errorf("heartbeat: %w", err)
	}

	a.mu.Lock()
	a.lastHeartbeat = a.now()
	a.mu.Unlock()

	a.log.WithField("bytes", len(doc)).Info("heartbeat checked")
	return nil
}

// RegisterAgent creates a new agent on the platform. The key is stored when
// a credential manager is configured.
func (a *App) RegisterAgent(ctx context.Context, name, description string) (*types.Registration, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}
	if a.creds != nil {
		return a.creds.Register(ctx, a.platform, name, description)
	}
	return a.platform.Register(ctx, name, description)
}

// CreatePost publishes a manual post through the shared throttle. A
// throttled call returns (nil, nil).
func (a *App) CreatePost(ctx context.Context, title, text, community string) (*types.Post, error) {
	if !a.getSnapshot().initialized {
		return nil, ErrNotInitialized
	}
	return a.agent.CreatePost(ctx, title, text, community)
}

// Status is the externally visible service state
type Status struct {
	Running              bool                `json:"running"`
	Initialized          bool                `json:"initialized"`
	AgentName            string              `json:"agentName,omitempty"`
	ClaimStatus          string              `json:"claimStatus,omitempty"`
	Karma                int                 `json:"karma,omitempty"`
	LastPost             *time.Time          `json:"lastPost"`
	NextPostIn           string              `json:"nextPostIn,omitempty"`
	LastHeartbeatCheck   *time.Time          `json:"lastHeartbeatCheck"`
	LastCycle            *time.Time          `json:"lastCycle"`
	LastCycleEvaluated   int                 `json:"lastCycleEvaluated"`
	PostFrequencyMinutes int                 `json:"postFrequencyMinutes"`
	Setup                *agent.SetupReport  `json:"setup,omitempty"`
	Jobs                 []scheduler.JobInfo `json:"jobs"`
}

// Status returns a point-in-time view of the service
func (a *App) Status() Status {
	s := a.getSnapshot()
	st := Status{
		Running:              s.running,
		Initialized:          s.initialized,
		ClaimStatus:          s.claimStatus,
		PostFrequencyMinutes: a.cfg.Behavior.PostFrequencyMinutes,
		Setup:                s.setup,
		Jobs:                 a.scheduler.ListJobs(),
	}
	if s.profile != nil {
		st.AgentName = s.profile.Name
		st.Karma = s.profile.Karma
	}
	if last := a.agent.Throttle().Last(); !last.IsZero() {
		st.LastPost = &last
		if wait := a.agent.Throttle().Remaining(a.now()); wait > 0 {
			st.NextPostIn = wait.Round(time.Second).String()
		}
	}
	if !s.lastHeartbeat.IsZero() {
		st.LastHeartbeatCheck = &s.lastHeartbeat
	}
	if s.lastCycle != nil {
		finished := s.lastCycle.Finished
		st.LastCycle = &finished
		st.LastCycleEvaluated = len(s.lastCycle.Evaluations)
	}
	return st
}
