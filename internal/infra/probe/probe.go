package probe

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"support-widget/internal/infra/logger"
	"support-widget/internal/metrics"
)

// State is the availability latch. The only allowed transition is Online -> Offline;
// returning online requires a new Probe (a fresh session).
type State int

const (
	Online State = iota
	Offline
)

func (s State) String() string {
	if s == Offline {
		return "offline"
	}
	return "online"
}

const DefaultTimeout = time.Second

// Probe checks backend reachability with a bounded HEAD request and latches
// offline on the first failure.
type Probe struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	HealthURL  string
	Timeout    time.Duration

	mu    sync.Mutex
	state State
}

func NewProbe(logger *logger.Logger, httpClient *http.Client, healthURL string, timeout time.Duration) *Probe {
	return NewProbeWithState(logger, httpClient, healthURL, timeout, Online)
}

// NewProbeWithState lets callers (tests in particular) start in a known state.
func NewProbeWithState(logger *logger.Logger, httpClient *http.Client, healthURL string, timeout time.Duration, initial State) *Probe {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Probe{
		Logger:     logger,
		HttpClient: httpClient,
		HealthURL:  healthURL,
		Timeout:    timeout,
		state:      initial,
	}
}

// State returns the current latch state without probing.
func (p *Probe) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// IsAvailable reports whether the backend answered the existence check.
// Once offline it returns false without touching the network.
func (p *Probe) IsAvailable(ctx context.Context) bool {
	if p.State() == Offline {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.HealthURL, nil)
	if err != nil {
		p.Trip(fmt.Errorf("build health request: %w", err))
		return false
	}

	res, err := p.HttpClient.Do(req)
	if err != nil {
		p.Trip(err)
		return false
	}
	res.Body.Close()
	return true
}

// Trip latches the probe offline. Repeated calls are no-ops.
func (p *Probe) Trip(cause error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Offline {
		return
	}
	p.state = Offline
	metrics.OfflineTransitions.Inc()
	p.Logger.Info(fmt.Sprintf("Using offline mode with local store (API server not available): %v", cause))
}
