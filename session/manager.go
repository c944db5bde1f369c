package session

import (
	"sync"

	"github.com/rs/zerolog"

	apperrors "github.com/smart-condominium/condo-console/internal/errors"
	"github.com/smart-condominium/condo-console/users"
)

// State is the manager's lifecycle position.
type State int

const (
	// StateInitializing is entered on construction and left after the one
	// hydration pass over the persisted store.
	StateInitializing State = iota
	StateAuthenticated
	StateUnauthenticated
)

// Manager is the single authoritative holder of "who is logged in",
// synchronized with its Store. Construct one per process and inject it;
// nothing else writes session state.
type Manager struct {
	store Store
	log   zerolog.Logger

	mu      sync.RWMutex
	state   State
	current Session
}

func NewManager(store Store, logger zerolog.Logger) *Manager {
	return &Manager{
		store: store,
		log:   logger.With().Str("component", "session").Logger(),
		state: StateInitializing,
	}
}

// Hydrate restores the session from the persisted store. It runs once at
// startup: a complete triple that parses moves the manager to Authenticated;
// anything else (missing keys, unreadable store, unparsable profile) clears
// the store defensively and moves to Unauthenticated. Hydration never fails
// the process.
func (m *Manager) Hydrate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateInitializing {
		return
	}

	access, errAccess := m.store.Read(KeyAccess)
	refresh, errRefresh := m.store.Read(KeyRefresh)
	userJSON, errUser := m.store.Read(KeyUser)

	if errAccess != nil || errRefresh != nil || errUser != nil {
		m.log.Debug().Msg("incomplete persisted session, starting unauthenticated")
		m.clearLocked()
		return
	}

	profile, err := users.ParseProfile([]byte(userJSON))
	if err != nil {
		m.log.Warn().Err(err).Msg("stored profile did not parse, discarding session")
		m.clearLocked()
		return
	}

	m.current = Session{User: profile}
	m.current.Token.AccessToken = access
	m.current.Token.RefreshToken = refresh
	m.state = StateAuthenticated
	m.log.Info().Str("username", profile.Username).Str("user_type", string(profile.UserType)).Msg("session restored")
}

// Initializing reports whether hydration has not completed yet. Gated
// screens must not render while this is true.
func (m *Manager) Initializing() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateInitializing
}

// Current returns the live session, if any.
func (m *Manager) Current() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated {
		return Session{}, false
	}
	return m.current, true
}

// AccessToken returns the current bearer string, or "" when there is no
// session. Requests sent without a session go out unauthenticated.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated {
		return ""
	}
	return m.current.Token.AccessToken
}

// Login installs the backend's login payload as the current session. The
// profile is normalized, all three fields are written to the store, then the
// in-memory state flips to Authenticated. Token strings are taken as-is;
// a malformed token simply fails on its first authenticated request.
func (m *Manager) Login(access, refresh string, profile users.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	profile.Normalize()

	userJSON, err := profile.MarshalStored()
	if err != nil {
		return apperrors.Wrapf(err, "session.Login")
	}
	if err := m.store.Write(KeyAccess, access); err != nil {
		return apperrors.Wrapf(err, "session.Login access")
	}
	if err := m.store.Write(KeyRefresh, refresh); err != nil {
		return apperrors.Wrapf(err, "session.Login refresh")
	}
	if err := m.store.Write(KeyUser, string(userJSON)); err != nil {
		return apperrors.Wrapf(err, "session.Login user")
	}

	m.current = Session{User: profile}
	m.current.Token.AccessToken = access
	m.current.Token.RefreshToken = refresh
	m.state = StateAuthenticated
	m.log.Info().Str("username", profile.Username).Str("user_type", string(profile.UserType)).Msg("logged in")
	return nil
}

// Logout clears the persisted store and drops the in-memory session.
// Idempotent: logging out while unauthenticated is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
	m.log.Info().Msg("logged out")
}

// Invalidate performs the same clearing as Logout. It is the gateway's entry
// point when a 401 response proves the credential dead; the single lock
// acquisition keeps concurrent 401s from interleaving with a half-cleared
// session.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateUnauthenticated {
		return
	}
	m.clearLocked()
	m.log.Warn().Msg("session invalidated by authentication failure")
}

// UpdateUser merges an updated (possibly partial) profile into the current
// user and rewrites the stored profile. Tokens are untouched.
func (m *Manager) UpdateUser(update users.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateAuthenticated {
		return apperrors.ErrNotAuthenticated
	}

	merged := mergeProfile(m.current.User, update)
	merged.Normalize()

	userJSON, err := merged.MarshalStored()
	if err != nil {
		return apperrors.Wrapf(err, "session.UpdateUser")
	}
	if err := m.store.Write(KeyUser, string(userJSON)); err != nil {
		return apperrors.Wrapf(err, "session.UpdateUser")
	}

	m.current.User = merged
	m.log.Debug().Str("username", merged.Username).Msg("profile updated")
	return nil
}

// clearLocked removes the session triple and flips to Unauthenticated.
// Callers hold the write lock. A failing Clear is logged, not surfaced:
// the in-memory session is dropped regardless.
func (m *Manager) clearLocked() {
	if err := m.store.Clear(); err != nil {
		m.log.Error().Err(err).Msg("failed to clear persisted session store")
	}
	m.current = Session{}
	m.state = StateUnauthenticated
}

// mergeProfile overlays non-zero fields of update onto base. The active
// flag only participates when the update document carried one.
func mergeProfile(base, update users.Profile) users.Profile {
	merged := base
	if update.ID != 0 {
		merged.ID = update.ID
	}
	if update.Username != "" {
		merged.Username = update.Username
	}
	if update.Email != "" {
		merged.Email = update.Email
	}
	if update.FirstName != "" {
		merged.FirstName = update.FirstName
	}
	if update.LastName != "" {
		merged.LastName = update.LastName
	}
	if update.DNI != "" {
		merged.DNI = update.DNI
	}
	if update.Phone != "" {
		merged.Phone = update.Phone
	}
	if update.BirthDate != "" {
		merged.BirthDate = update.BirthDate
	}
	if update.UserType != "" {
		merged.UserType = update.UserType
		merged.Role = update.UserType
	} else if update.Role != "" {
		merged.UserType = update.Role
		merged.Role = update.Role
	}
	if update.IsActive != nil {
		merged.IsActive = update.IsActive
	}
	return merged
}
