package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dtroode/repairctl/internal/mocks"
	"github.com/dtroode/repairctl/internal/model"
	"github.com/dtroode/repairctl/internal/storage/memory"
	"github.com/dtroode/repairctl/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	durable   *memory.KV
	ephemeral *memory.KV
	backend   *mocks.LogoutNotifier
	navigator *mocks.Navigator
	manager   *Manager
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	f := &fixture{
		durable:   memory.NewKV(),
		ephemeral: memory.NewKV(),
		backend:   mocks.NewLogoutNotifier(t),
		navigator: mocks.NewNavigator(t),
	}
	f.manager = NewManager(f.durable, f.ephemeral, f.backend, f.navigator, testutil.MakeNoopLogger(), opts...)
	return f
}

func seed(t *testing.T, kv model.KVStore, token string, p model.Profile) {
	t.Helper()
	ctx := context.Background()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, model.KeyToken, token))
	require.NoError(t, kv.Set(ctx, model.KeyUser, string(raw)))
}

func get(t *testing.T, kv model.KVStore, key string) (string, bool) {
	t.Helper()
	v, ok, err := kv.Get(context.Background(), key)
	require.NoError(t, err)
	return v, ok
}

var (
	alice = model.Profile{ID: 1, Email: "alice@example.com", FullName: "Alice", Role: model.RoleCustomer, Enabled: true}
	bob   = model.Profile{ID: 2, Email: "bob@example.com", FullName: "Bob", Role: model.RoleShopOwner, Enabled: true}
)

func TestManager_Bootstrap_DurableWins(t *testing.T) {
	f := newFixture(t)
	seed(t, f.durable, "durable-token", alice)
	seed(t, f.ephemeral, "ephemeral-token", bob)

	s, err := f.manager.Bootstrap(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "durable-token", s.Token)
	assert.Equal(t, alice.ID, s.Profile.ID)
	assert.Equal(t, model.TierDurable, s.Tier)
	assert.Equal(t, model.StateAuthenticated, f.manager.State())
	assert.Equal(t, alice.Email, f.manager.CurrentUser().Email)
}

func TestManager_Bootstrap_EphemeralFallback(t *testing.T) {
	f := newFixture(t)
	seed(t, f.ephemeral, "ephemeral-token", bob)

	s, err := f.manager.Bootstrap(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, model.TierEphemeral, s.Tier)
	assert.Equal(t, model.RoleShopOwner, s.Profile.Role)
}

func TestManager_Bootstrap_Empty(t *testing.T) {
	f := newFixture(t)

	s, err := f.manager.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Equal(t, model.StateUnauthenticated, f.manager.State())
	assert.Nil(t, f.manager.CurrentUser())
}

func TestManager_Bootstrap_CorruptProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.durable.Set(ctx, model.KeyToken, "tok"))
	require.NoError(t, f.durable.Set(ctx, model.KeyUser, "{not json"))

	s, err := f.manager.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Equal(t, model.StateUnauthenticated, f.manager.State())
}

func TestManager_Bootstrap_MissingProfile(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ephemeral.Set(context.Background(), model.KeyToken, "tok"))

	s, err := f.manager.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestManager_Bootstrap_ReadErrorKeepsUnknown(t *testing.T) {
	durable := mocks.NewKVStore(t)
	durable.On("Get", mock.Anything, model.KeyToken).Return("", false, errors.New("disk I/O error"))

	m := NewManager(durable, memory.NewKV(), nil, nil, testutil.MakeNoopLogger())

	s, err := m.Bootstrap(context.Background())
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "failed to read token from durable tier")
	assert.Equal(t, model.StateUnknown, m.State())
	assert.Equal(t, model.DenyUnknown, m.Authorize())
}

func TestManager_Bootstrap_ReadsStorageOnce(t *testing.T) {
	durable := mocks.NewKVStore(t)
	ephemeral := mocks.NewKVStore(t)
	durable.On("Get", mock.Anything, model.KeyToken).Return("", false, nil).Once()
	ephemeral.On("Get", mock.Anything, model.KeyToken).Return("", false, nil).Once()

	m := NewManager(durable, ephemeral, nil, nil, testutil.MakeNoopLogger())

	_, err := m.Bootstrap(context.Background())
	require.NoError(t, err)
	_, err = m.Bootstrap(context.Background())
	require.NoError(t, err)
}

func TestManager_Login(t *testing.T) {
	tests := []struct {
		name      string
		remember  bool
		wantTier  model.Tier
		seedOther func(t *testing.T, f *fixture)
	}{
		{
			name:     "remember writes durable and clears ephemeral",
			remember: true,
			wantTier: model.TierDurable,
			seedOther: func(t *testing.T, f *fixture) {
				seed(t, f.ephemeral, "stale", bob)
			},
		},
		{
			name:     "session only writes ephemeral and clears durable",
			remember: false,
			wantTier: model.TierEphemeral,
			seedOther: func(t *testing.T, f *fixture) {
				seed(t, f.durable, "stale", bob)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.seedOther(t, f)
			ctx := context.Background()

			require.NoError(t, f.manager.Login(ctx, alice, "fresh", tt.remember))

			target, other := f.durable, f.ephemeral
			if tt.wantTier == model.TierEphemeral {
				target, other = f.ephemeral, f.durable
			}

			tok, ok := get(t, target, model.KeyToken)
			assert.True(t, ok)
			assert.Equal(t, "fresh", tok)
			raw, ok := get(t, target, model.KeyUser)
			require.True(t, ok)
			var stored model.Profile
			require.NoError(t, json.Unmarshal([]byte(raw), &stored))
			assert.Equal(t, alice.Email, stored.Email)

			assert.Zero(t, other.Len())
			assert.Equal(t, model.StateAuthenticated, f.manager.State())
			assert.Equal(t, "fresh", f.manager.Token(ctx))
		})
	}
}

func TestManager_TierPrecedenceAcrossRestart(t *testing.T) {
	tests := []struct {
		name      string
		first     bool
		second    bool
		wantToken string
		wantTier  model.Tier
		wantUser  model.Profile
	}{
		{
			name:      "session only then remembered",
			first:     false,
			second:    true,
			wantToken: "second-token",
			wantTier:  model.TierDurable,
			wantUser:  bob,
		},
		{
			name:      "remembered then session only",
			first:     true,
			second:    false,
			wantToken: "second-token",
			wantTier:  model.TierEphemeral,
			wantUser:  bob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			require.NoError(t, f.manager.Login(ctx, alice, "first-token", tt.first))
			require.NoError(t, f.manager.Login(ctx, bob, "second-token", tt.second))

			// A new process over the same stores.
			restarted := NewManager(f.durable, f.ephemeral, nil, nil, testutil.MakeNoopLogger())
			s, err := restarted.Bootstrap(ctx)
			require.NoError(t, err)
			require.NotNil(t, s)
			assert.Equal(t, tt.wantToken, s.Token)
			assert.Equal(t, tt.wantTier, s.Tier)
			assert.Equal(t, tt.wantUser.ID, s.Profile.ID)

			other := f.ephemeral
			if tt.wantTier == model.TierEphemeral {
				other = f.durable
			}
			assert.Zero(t, other.Len())
		})
	}
}

func TestManager_Login_RejectsEmptyToken(t *testing.T) {
	f := newFixture(t)

	err := f.manager.Login(context.Background(), alice, "", true)
	assert.ErrorIs(t, err, model.ErrNoTokenInSession)
	assert.Zero(t, f.durable.Len())
}

func TestManager_Login_WriteFailure(t *testing.T) {
	durable := mocks.NewKVStore(t)
	durable.On("Set", mock.Anything, model.KeyToken, "tok").Return(errors.New("read-only"))

	m := NewManager(durable, memory.NewKV(), nil, nil, testutil.MakeNoopLogger())

	err := m.Login(context.Background(), alice, "tok", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store token in durable tier")
	assert.Nil(t, m.CurrentUser())
}

func TestManager_ForceLogout_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.manager.Login(ctx, alice, "tok", true))
	seed(t, f.ephemeral, "other", bob)

	f.navigator.On("Navigate", LoginPath).Return().Twice()

	f.manager.ForceLogout(ctx)
	f.manager.ForceLogout(ctx)

	assert.Zero(t, f.durable.Len())
	assert.Zero(t, f.ephemeral.Len())
	assert.Nil(t, f.manager.CurrentUser())
	assert.Equal(t, model.StateUnauthenticated, f.manager.State())
	assert.False(t, f.manager.IsAuthenticated(ctx))
	f.backend.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}

func TestManager_ForceLogout_Concurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.manager.Login(ctx, alice, "tok", false))

	f.navigator.On("Navigate", LoginPath).Return()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.manager.ForceLogout(ctx)
		}()
	}
	wg.Wait()

	assert.Zero(t, f.durable.Len())
	assert.Zero(t, f.ephemeral.Len())
	assert.Nil(t, f.manager.CurrentUser())
}

func TestManager_Logout_DoesNotWaitForBackend(t *testing.T) {
	f := newFixture(t, WithLogoutTimeout(time.Second))
	ctx := context.Background()
	require.NoError(t, f.manager.Login(ctx, alice, "tok", true))

	release := make(chan struct{})
	f.backend.On("Logout", mock.Anything, "tok").
		Run(func(mock.Arguments) { <-release }).
		Return(nil).Once()
	f.navigator.On("Navigate", LoginPath).Return().Once()

	f.manager.Logout(ctx)

	assert.Zero(t, f.durable.Len())
	assert.Nil(t, f.manager.CurrentUser())
	assert.Equal(t, model.StateUnauthenticated, f.manager.State())

	close(release)
	f.manager.Wait()
}

func TestManager_Logout_BackendFailureStillClears(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	f := newFixture(t, WithNotifier(notifier))
	ctx := context.Background()
	require.NoError(t, f.manager.Login(ctx, bob, "tok", false))

	f.backend.On("Logout", mock.Anything, "tok").Return(errors.New("connection refused")).Once()
	f.navigator.On("Navigate", LoginPath).Return().Once()
	notifier.On("Info", "You have been logged out").Return().Once()

	f.manager.Logout(ctx)
	f.manager.Wait()

	assert.Zero(t, f.ephemeral.Len())
	assert.False(t, f.manager.IsAuthenticated(ctx))
}

func TestManager_Logout_BackendTimeout(t *testing.T) {
	f := newFixture(t, WithLogoutTimeout(20*time.Millisecond))
	ctx := context.Background()
	require.NoError(t, f.manager.Login(ctx, alice, "tok", true))

	f.backend.On("Logout", mock.Anything, "tok").
		Return(func(ctx context.Context, _ string) error {
			<-ctx.Done()
			return ctx.Err()
		}).Once()
	f.navigator.On("Navigate", LoginPath).Return().Once()

	f.manager.Logout(ctx)
	f.manager.Wait()

	assert.Zero(t, f.durable.Len())
}

func TestManager_Logout_WithoutTokenSkipsBackend(t *testing.T) {
	f := newFixture(t)
	f.navigator.On("Navigate", LoginPath).Return().Once()

	f.manager.Logout(context.Background())
	f.manager.Wait()

	f.backend.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}

func TestManager_Authorize(t *testing.T) {
	tests := []struct {
		name     string
		profile  *model.Profile
		required []model.Role
		want     model.Decision
	}{
		{name: "anonymous", required: []model.Role{model.RoleCustomer}, want: model.DenyUnauthenticated},
		{name: "anonymous no roles", want: model.DenyUnauthenticated},
		{name: "any logged in", profile: &alice, want: model.Allow},
		{name: "matching role", profile: &alice, required: []model.Role{model.RoleCustomer}, want: model.Allow},
		{name: "one of roles", profile: &bob, required: []model.Role{model.RoleAdmin, model.RoleShopOwner}, want: model.Allow},
		{name: "wrong role", profile: &bob, required: []model.Role{model.RoleCustomer}, want: model.DenyForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			assert.Equal(t, model.DenyUnknown, f.manager.Authorize(tt.required...))

			if tt.profile != nil {
				seed(t, f.durable, "tok", *tt.profile)
			}
			_, err := f.manager.Bootstrap(ctx)
			require.NoError(t, err)

			assert.Equal(t, tt.want, f.manager.Authorize(tt.required...))
		})
	}
}

func TestManager_IsAuthenticated_ReadsStorage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.False(t, f.manager.IsAuthenticated(ctx))

	require.NoError(t, f.ephemeral.Set(ctx, model.KeyToken, "opaque"))
	assert.True(t, f.manager.IsAuthenticated(ctx))
	assert.Equal(t, "opaque", f.manager.Token(ctx))
}

func TestManager_Subscribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	type event struct {
		state model.AuthState
		email string
	}
	var events []event
	unsubscribe := f.manager.Subscribe(func(s model.AuthState, p *model.Profile) {
		e := event{state: s}
		if p != nil {
			e.email = p.Email
		}
		events = append(events, e)
	})

	_, err := f.manager.Bootstrap(ctx)
	require.NoError(t, err)
	require.NoError(t, f.manager.Login(ctx, alice, "tok", true))

	f.navigator.On("Navigate", LoginPath).Return()
	f.manager.ForceLogout(ctx)

	unsubscribe()
	unsubscribe()
	require.NoError(t, f.manager.Login(ctx, bob, "tok2", false))

	assert.Equal(t, []event{
		{state: model.StateUnauthenticated},
		{state: model.StateAuthenticated, email: alice.Email},
		{state: model.StateUnauthenticated},
	}, events)
}

func TestManager_LogsTokenExpiry(t *testing.T) {
	inspector := mocks.NewTokenInspector(t)
	inspector.On("Inspect", "tok").Return(model.TokenClaims{
		Subject:   alice.Email,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil).Once()

	f := newFixture(t, WithTokenInspector(inspector))
	require.NoError(t, f.manager.Login(context.Background(), alice, "tok", true))

	// An expired-looking token does not change the outcome.
	assert.True(t, f.manager.IsAuthenticated(context.Background()))
}
