package usecase_test

import (
	"context"
	"errors"
	"testing"

	mock_port "github.com/bnema/dusk/internal/application/port/mocks"
	"github.com/bnema/dusk/internal/application/usecase"
	"github.com/bnema/dusk/internal/domain/entity"
	"github.com/bnema/dusk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// memoryStore is a map-backed store used to observe what was persisted.
type memoryStore struct {
	values  map[string]string
	loadErr error
	saveErr error
	saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Load(_ context.Context, key string) (string, bool, error) {
	if s.loadErr != nil {
		return "", false, s.loadErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memoryStore) Save(_ context.Context, key, value string) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.values[key] = value
	return nil
}

// fakeAmbient is a controllable ambient signal.
type fakeAmbient struct {
	prefersDark bool
	callbacks   []func(bool)
}

func (a *fakeAmbient) Read() bool { return a.prefersDark }

func (a *fakeAmbient) Subscribe(cb func(bool)) func() {
	a.callbacks = append(a.callbacks, cb)
	idx := len(a.callbacks) - 1
	return func() { a.callbacks[idx] = nil }
}

func (a *fakeAmbient) set(prefersDark bool) {
	a.prefersDark = prefersDark
	for _, cb := range a.callbacks {
		if cb != nil {
			cb(prefersDark)
		}
	}
}

// recordingSink keeps the last applied scheme, like a styling flag.
type recordingSink struct {
	flag    entity.ColorScheme
	applied []entity.ColorScheme
}

func (s *recordingSink) Apply(_ context.Context, scheme entity.ColorScheme) {
	s.flag = scheme
	s.applied = append(s.applied, scheme)
}

func TestPreferenceController_Initialize_AmbientDecidesWithoutStoredChoice(t *testing.T) {
	tests := []struct {
		name        string
		prefersDark bool
		want        entity.ColorScheme
	}{
		{"ambient dark", true, entity.ColorSchemeDark},
		{"ambient light", false, entity.ColorSchemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			store := newMemoryStore()
			sink := &recordingSink{}
			ctrl := usecase.NewPreferenceController(store, &fakeAmbient{prefersDark: tt.prefersDark}, sink)

			state := ctrl.Initialize(ctx)

			assert.Equal(t, tt.want, state.Scheme)
			assert.False(t, state.Explicit)
			assert.Equal(t, tt.want, sink.flag)
			assert.Zero(t, store.saves, "initialization must not persist")
		})
	}
}

func TestPreferenceController_Initialize_StoredChoiceWins(t *testing.T) {
	ctx := testContext()
	store := newMemoryStore()
	store.values["theme"] = "light"
	sink := &recordingSink{}

	ctrl := usecase.NewPreferenceController(store, &fakeAmbient{prefersDark: true}, sink)
	state := ctrl.Initialize(ctx)

	assert.Equal(t, entity.ColorSchemeLight, state.Scheme)
	assert.True(t, ctrl.HasExplicitChoice())
	assert.Equal(t, entity.ColorSchemeLight, sink.flag)
}

func TestPreferenceController_Initialize_UnreadableStoreFallsBackToAmbient(t *testing.T) {
	ctx := testContext()
	store := newMemoryStore()
	store.values["theme"] = "light"
	store.loadErr = errors.New("disk on fire")
	sink := &recordingSink{}

	ctrl := usecase.NewPreferenceController(store, &fakeAmbient{prefersDark: true}, sink)
	state := ctrl.Initialize(ctx)

	assert.Equal(t, entity.ColorSchemeDark, state.Scheme)
	assert.False(t, state.Explicit)
}

func TestPreferenceController_Initialize_IgnoresGarbageStoredValue(t *testing.T) {
	ctx := testContext()
	store := newMemoryStore()
	store.values["theme"] = "sepia"

	ctrl := usecase.NewPreferenceController(store, &fakeAmbient{prefersDark: false}, &recordingSink{})
	state := ctrl.Initialize(ctx)

	assert.Equal(t, entity.ColorSchemeLight, state.Scheme)
	assert.False(t, state.Explicit)
}

func TestPreferenceController_Initialize_IsIdempotent(t *testing.T) {
	ctx := testContext()
	ambient := &fakeAmbient{}
	sink := &recordingSink{}

	ctrl := usecase.NewPreferenceController(newMemoryStore(), ambient, sink)
	ctrl.Initialize(ctx)
	ctrl.Initialize(ctx)

	assert.Len(t, ambient.callbacks, 1)
	assert.Len(t, sink.applied, 1)
}

func TestPreferenceController_Toggle(t *testing.T) {
	ctx := testContext()
	store := newMemoryStore()
	sink := &recordingSink{}

	ctrl := usecase.NewPreferenceController(store, &fakeAmbient{prefersDark: false}, sink)
	ctrl.Initialize(ctx)
	require.Equal(t, entity.ColorSchemeLight, ctrl.Current())

	assert.Equal(t, entity.ColorSchemeDark, ctrl.Toggle(ctx))
	assert.Equal(t, "dark", store.values["theme"])
	assert.Equal(t, entity.ColorSchemeDark, sink.flag)
	assert.True(t, ctrl.HasExplicitChoice())

	assert.Equal(t, entity.ColorSchemeLight, ctrl.Toggle(ctx))
	assert.Equal(t, "light", store.values["theme"])
	assert.Equal(t, entity.ColorSchemeLight, sink.flag)
}

func TestPreferenceController_Toggle_SurvivesWriteFailure(t *testing.T) {
	ctx := testContext()
	store := newMemoryStore()
	store.saveErr = errors.New("read-only filesystem")
	sink := &recordingSink{}

	ctrl := usecase.NewPreferenceController(store, &fakeAmbient{prefersDark: true}, sink)
	ctrl.Initialize(ctx)

	assert.Equal(t, entity.ColorSchemeLight, ctrl.Toggle(ctx))
	assert.Equal(t, entity.ColorSchemeLight, sink.flag)
	assert.Equal(t, 1, store.saves)
	assert.Empty(t, store.values)
	assert.False(t, ctrl.HasExplicitChoice())
	assert.Equal(t, entity.SourceAmbient, ctrl.State().Source())
}

func TestPreferenceController_AmbientChange_FollowedAfterFailedWrite(t *testing.T) {
	ctx := testContext()
	store := newMemoryStore()
	store.saveErr = errors.New("read-only filesystem")
	ambient := &fakeAmbient{prefersDark: false}
	sink := &recordingSink{}

	ctrl := usecase.NewPreferenceController(store, ambient, sink)
	ctrl.Initialize(ctx)

	require.Equal(t, entity.ColorSchemeDark, ctrl.Toggle(ctx))

	ambient.set(true)
	ambient.set(false)

	assert.Empty(t, store.values)
	assert.False(t, ctrl.HasExplicitChoice())
	assert.Equal(t, entity.ColorSchemeLight, ctrl.Current())
	assert.Equal(t, entity.ColorSchemeLight, sink.flag)
}

func TestPreferenceController_AmbientChange_FollowedWithoutExplicitChoice(t *testing.T) {
	ctx := testContext()
	ambient := &fakeAmbient{prefersDark: false}
	sink := &recordingSink{}

	ctrl := usecase.NewPreferenceController(newMemoryStore(), ambient, sink)
	ctrl.Initialize(ctx)

	ambient.set(true)
	assert.Equal(t, entity.ColorSchemeDark, ctrl.Current())
	assert.Equal(t, entity.ColorSchemeDark, sink.flag)

	ambient.set(false)
	assert.Equal(t, entity.ColorSchemeLight, ctrl.Current())
	assert.False(t, ctrl.HasExplicitChoice())
}

func TestPreferenceController_AmbientChange_IgnoredAfterExplicitChoice(t *testing.T) {
	ctx := testContext()
	store := newMemoryStore()
	ambient := &fakeAmbient{prefersDark: false}
	sink := &recordingSink{}

	ctrl := usecase.NewPreferenceController(store, ambient, sink)
	ctrl.Initialize(ctx)
	require.Equal(t, entity.ColorSchemeLight, ctrl.Current())

	ctrl.Toggle(ctx)
	require.Equal(t, "dark", store.values["theme"])

	ambient.set(true)
	ambient.set(false)

	assert.Equal(t, entity.ColorSchemeDark, ctrl.Current())
	assert.Equal(t, entity.ColorSchemeDark, sink.flag)
	assert.Equal(t, "dark", store.values["theme"])
}

func TestPreferenceController_AmbientChange_AdoptsChoiceStoredElsewhere(t *testing.T) {
	ctx := testContext()
	store := newMemoryStore()
	ambient := &fakeAmbient{prefersDark: false}
	sink := &recordingSink{}

	ctrl := usecase.NewPreferenceController(store, ambient, sink)
	ctrl.Initialize(ctx)

	// Another process toggled to light while the ambient signal goes dark.
	store.values["theme"] = "light"
	ambient.set(true)

	assert.Equal(t, entity.ColorSchemeLight, ctrl.Current())
	assert.True(t, ctrl.HasExplicitChoice())
}

func TestPreferenceController_AmbientChange_RoutedThroughScheduler(t *testing.T) {
	ctx := testContext()
	ambient := &fakeAmbient{prefersDark: false}
	var queued []func()

	ctrl := usecase.NewPreferenceController(newMemoryStore(), ambient, &recordingSink{},
		usecase.WithScheduler(func(fn func()) { queued = append(queued, fn) }))
	ctrl.Initialize(ctx)

	ambient.set(true)
	assert.Equal(t, entity.ColorSchemeLight, ctrl.Current(), "change must wait for the scheduler")
	require.Len(t, queued, 1)

	queued[0]()
	assert.Equal(t, entity.ColorSchemeDark, ctrl.Current())
}

func TestPreferenceController_Close_StopsAmbientUpdates(t *testing.T) {
	ctx := testContext()
	ambient := &fakeAmbient{prefersDark: false}

	ctrl := usecase.NewPreferenceController(newMemoryStore(), ambient, &recordingSink{})
	ctrl.Initialize(ctx)
	ctrl.Close()
	ctrl.Close()

	ambient.set(true)
	assert.Equal(t, entity.ColorSchemeLight, ctrl.Current())
}

func TestPreferenceController_Reload(t *testing.T) {
	ctx := testContext()
	store := newMemoryStore()
	sink := &recordingSink{}

	ctrl := usecase.NewPreferenceController(store, &fakeAmbient{prefersDark: false}, sink)
	ctrl.Initialize(ctx)

	state := ctrl.Reload(ctx)
	assert.Equal(t, entity.ColorSchemeLight, state.Scheme)
	assert.Len(t, sink.applied, 1, "unchanged scheme is not re-applied")

	store.values["theme"] = "dark"
	state = ctrl.Reload(ctx)
	assert.Equal(t, entity.PreferenceState{Scheme: entity.ColorSchemeDark, Explicit: true}, state)
	assert.Equal(t, entity.ColorSchemeDark, sink.flag)
}

func TestPreferenceController_Scenario(t *testing.T) {
	ctx := testContext()
	mockCtrl := gomock.NewController(t)

	store := mock_port.NewMockPreferenceStore(mockCtrl)
	ambient := mock_port.NewMockAmbientSignal(mockCtrl)
	sink := mock_port.NewMockPresentationSink(mockCtrl)

	var onAmbient func(bool)
	gomock.InOrder(
		store.EXPECT().Load(gomock.Any(), "theme").Return("", false, nil),
		ambient.EXPECT().Read().Return(false),
		sink.EXPECT().Apply(gomock.Any(), entity.ColorSchemeLight),
		ambient.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(cb func(bool)) func() {
			onAmbient = cb
			return func() {}
		}),
		sink.EXPECT().Apply(gomock.Any(), entity.ColorSchemeDark),
		store.EXPECT().Save(gomock.Any(), "theme", "dark").Return(nil),
	)

	ctrl := usecase.NewPreferenceController(store, ambient, sink)
	assert.Equal(t, entity.ColorSchemeLight, ctrl.Initialize(ctx).Scheme)

	assert.Equal(t, entity.ColorSchemeDark, ctrl.Toggle(ctx))

	// Host flips to dark: explicit choice already stored, nothing else happens.
	require.NotNil(t, onAmbient)
	onAmbient(true)
	assert.Equal(t, entity.ColorSchemeDark, ctrl.Current())
}
