// Package session owns the authenticated session of the marketplace client.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dtroode/repairctl/internal/logger"
	"github.com/dtroode/repairctl/internal/model"
)

// LoginPath is where the user is sent after the session ends.
const LoginPath = "/login"

const defaultLogoutTimeout = 5 * time.Second

// Listener is called after every session state change.
type Listener func(state model.AuthState, profile *model.Profile)

// Manager is the single owner of session state. Durable and ephemeral tiers
// never both hold a session after a write: every write clears the other tier.
type Manager struct {
	durable   model.KVStore
	ephemeral model.KVStore
	backend   model.LogoutNotifier
	navigator model.Navigator
	notifier  model.Notifier
	inspector model.TokenInspector
	logger    *logger.Logger

	logoutTimeout time.Duration

	mu      sync.RWMutex
	state   model.AuthState
	session *model.Session

	subMu     sync.Mutex
	nextSubID int
	listeners map[int]Listener

	inflight sync.WaitGroup
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogoutTimeout bounds the backend logout notification.
func WithLogoutTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.logoutTimeout = d
		}
	}
}

// WithNotifier shows a message when the session ends.
func WithNotifier(n model.Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

// WithTokenInspector enables logging of token expiry on bootstrap and login.
func WithTokenInspector(i model.TokenInspector) Option {
	return func(m *Manager) { m.inspector = i }
}

func NewManager(
	durable model.KVStore,
	ephemeral model.KVStore,
	backend model.LogoutNotifier,
	navigator model.Navigator,
	logger *logger.Logger,
	opts ...Option,
) *Manager {
	m := &Manager{
		durable:       durable,
		ephemeral:     ephemeral,
		backend:       backend,
		navigator:     navigator,
		logger:        logger,
		logoutTimeout: defaultLogoutTimeout,
		state:         model.StateUnknown,
		listeners:     make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) tier(t model.Tier) model.KVStore {
	if t == model.TierDurable {
		return m.durable
	}
	return m.ephemeral
}

func otherTier(t model.Tier) model.Tier {
	if t == model.TierDurable {
		return model.TierEphemeral
	}
	return model.TierDurable
}

// Bootstrap rehydrates the session from storage. Only the first call reads
// storage; later calls return the in-memory session.
func (m *Manager) Bootstrap(ctx context.Context) (*model.Session, error) {
	m.mu.Lock()
	if m.state != model.StateUnknown {
		s := m.copySession()
		m.mu.Unlock()
		return s, nil
	}

	s, err := m.load(ctx)
	if err != nil {
		m.mu.Unlock()
		m.logger.Error("Session manager: failed to bootstrap",
			"error", err.Error())
		return nil, err
	}

	if s == nil {
		m.state = model.StateUnauthenticated
		m.session = nil
	} else {
		m.state = model.StateAuthenticated
		m.session = s
	}
	state, out := m.state, m.copySession()
	m.mu.Unlock()

	if out != nil {
		m.logger.Info("Session manager: session restored",
			"user_id", out.Profile.ID,
			"role", out.Profile.Role,
			"tier", out.Tier.String())
		m.logExpiry(out.Token)
	} else {
		m.logger.Debug("Session manager: no stored session")
	}

	m.notify(state, profileOf(out))
	return out, nil
}

// load reads DURABLE first, then EPHEMERAL. Must be called with mu held.
func (m *Manager) load(ctx context.Context) (*model.Session, error) {
	for _, t := range []model.Tier{model.TierDurable, model.TierEphemeral} {
		store := m.tier(t)

		token, found, err := store.Get(ctx, model.KeyToken)
		if err != nil {
			return nil, fmt.Errorf("failed to read token from %s tier: %w", t, err)
		}
		if !found || token == "" {
			continue
		}

		raw, found, err := store.Get(ctx, model.KeyUser)
		if err != nil {
			return nil, fmt.Errorf("failed to read user from %s tier: %w", t, err)
		}
		if !found {
			m.logger.Warn("Session manager: token without profile",
				"tier", t.String())
			return nil, nil
		}

		var profile model.Profile
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			m.logger.Warn("Session manager: stored profile is corrupt",
				"tier", t.String(),
				"error", err.Error())
			return nil, nil
		}

		return &model.Session{Token: token, Profile: profile, Tier: t}, nil
	}

	return nil, nil
}

// Login persists the session into DURABLE when remember is set and EPHEMERAL
// otherwise, and removes both keys from the other tier.
func (m *Manager) Login(ctx context.Context, profile model.Profile, token string, remember bool) error {
	if token == "" {
		return model.ErrNoTokenInSession
	}

	target := model.TierEphemeral
	if remember {
		target = model.TierDurable
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	m.mu.Lock()

	store := m.tier(target)
	if err := store.Set(ctx, model.KeyToken, token); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to store token in %s tier: %w", target, err)
	}
	if err := store.Set(ctx, model.KeyUser, string(raw)); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to store user in %s tier: %w", target, err)
	}

	other := otherTier(target)
	m.clearTier(ctx, other)

	m.session = &model.Session{Token: token, Profile: profile, Tier: target}
	m.state = model.StateAuthenticated
	out := m.copySession()
	m.mu.Unlock()

	m.logger.Info("Session manager: logged in",
		"user_id", profile.ID,
		"role", profile.Role,
		"tier", target.String())
	m.logExpiry(token)

	m.notify(model.StateAuthenticated, profileOf(out))
	return nil
}

// Logout notifies the backend without waiting for it, then clears both tiers
// and sends the user to the login page. Local clearing never depends on the
// backend call.
func (m *Manager) Logout(ctx context.Context) {
	token := m.Token(ctx)
	if token != "" && m.backend != nil {
		m.inflight.Add(1)
		go m.notifyBackend(context.WithoutCancel(ctx), token)
	}

	m.endSession(ctx, "logout")
}

// ForceLogout is the path taken when the backend rejects the token. It has
// the local effects of Logout without calling the backend, and is safe to
// call repeatedly.
func (m *Manager) ForceLogout(ctx context.Context) {
	m.endSession(ctx, "forced")
}

func (m *Manager) notifyBackend(ctx context.Context, token string) {
	defer m.inflight.Done()

	ctx, cancel := context.WithTimeout(ctx, m.logoutTimeout)
	defer cancel()

	if err := m.backend.Logout(ctx, token); err != nil {
		m.logger.Warn("Session manager: backend logout failed",
			"error", err.Error())
		return
	}
	m.logger.Debug("Session manager: backend logout acknowledged")
}

func (m *Manager) endSession(ctx context.Context, reason string) {
	m.mu.Lock()
	m.clearTier(ctx, model.TierDurable)
	m.clearTier(ctx, model.TierEphemeral)
	wasAuthenticated := m.session != nil
	m.session = nil
	m.state = model.StateUnauthenticated
	m.mu.Unlock()

	m.logger.Info("Session manager: session ended",
		"reason", reason,
		"was_authenticated", wasAuthenticated)

	m.notify(model.StateUnauthenticated, nil)

	if m.notifier != nil && wasAuthenticated {
		if reason == "forced" {
			m.notifier.Error("Your session has expired. Please log in again.")
		} else {
			m.notifier.Info("You have been logged out")
		}
	}
	if m.navigator != nil {
		m.navigator.Navigate(LoginPath)
	}
}

// clearTier removes both keys from a tier. Errors are logged; clearing continues.
func (m *Manager) clearTier(ctx context.Context, t model.Tier) {
	store := m.tier(t)
	for _, key := range []string{model.KeyToken, model.KeyUser} {
		if err := store.Remove(ctx, key); err != nil {
			m.logger.Error("Session manager: failed to clear key",
				"tier", t.String(),
				"key", key,
				"error", err.Error())
		}
	}
}

// Wait blocks until outstanding backend logout notifications have finished.
func (m *Manager) Wait() {
	m.inflight.Wait()
}

// CurrentUser returns a copy of the logged in profile, or nil.
func (m *Manager) CurrentUser() *model.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return profileOf(m.session)
}

// State returns the current authentication state.
func (m *Manager) State() model.AuthState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

// Token returns the bearer token held in memory, falling back to the
// DURABLE and then the EPHEMERAL tier. Returns "" when none is found.
func (m *Manager) Token(ctx context.Context) string {
	m.mu.RLock()
	if m.session != nil {
		t := m.session.Token
		m.mu.RUnlock()
		return t
	}
	m.mu.RUnlock()

	for _, t := range []model.Tier{model.TierDurable, model.TierEphemeral} {
		token, found, err := m.tier(t).Get(ctx, model.KeyToken)
		if err != nil {
			m.logger.Warn("Session manager: failed to read token",
				"tier", t.String(),
				"error", err.Error())
			continue
		}
		if found && token != "" {
			return token
		}
	}
	return ""
}

// IsAuthenticated reports whether a token is present in memory or storage.
// It is a liveness check only: the token is not validated.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	return m.Token(ctx) != ""
}

// Authorize decides whether the current user may access something that
// requires one of the given roles. An empty role set admits any logged in user.
func (m *Manager) Authorize(required ...model.Role) model.Decision {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == model.StateUnknown {
		return model.DenyUnknown
	}
	if m.session == nil {
		return model.DenyUnauthenticated
	}
	if len(required) == 0 {
		return model.Allow
	}
	for _, r := range required {
		if m.session.Profile.Role == r {
			return model.Allow
		}
	}
	return model.DenyForbidden
}

// Subscribe registers l for state changes and returns a function removing it.
func (m *Manager) Subscribe(l Listener) (unsubscribe func()) {
	m.subMu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.listeners[id] = l
	m.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subMu.Lock()
			delete(m.listeners, id)
			m.subMu.Unlock()
		})
	}
}

func (m *Manager) notify(state model.AuthState, profile *model.Profile) {
	m.subMu.Lock()
	ls := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		ls = append(ls, l)
	}
	m.subMu.Unlock()

	for _, l := range ls {
		var p *model.Profile
		if profile != nil {
			cp := *profile
			p = &cp
		}
		l(state, p)
	}
}

func (m *Manager) logExpiry(token string) {
	if m.inspector == nil {
		return
	}
	claims, err := m.inspector.Inspect(token)
	if err != nil {
		m.logger.Debug("Session manager: token is not inspectable",
			"error", err.Error())
		return
	}
	if claims.Expired(time.Now()) {
		m.logger.Warn("Session manager: token appears expired, the backend will decide",
			"expires_at", claims.ExpiresAt)
		return
	}
	if !claims.ExpiresAt.IsZero() {
		m.logger.Debug("Session manager: token expiry",
			"expires_at", claims.ExpiresAt)
	}
}

// copySession must be called with mu held.
func (m *Manager) copySession() *model.Session {
	if m.session == nil {
		return nil
	}
	s := *m.session
	return &s
}

func profileOf(s *model.Session) *model.Profile {
	if s == nil {
		return nil
	}
	p := s.Profile
	return &p
}
