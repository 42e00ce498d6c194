// Package settings persists player preferences (sound and default
// difficulty) in the per-user data directory through gdata.
package settings

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name; on Linux data lives under
// ~/.local/share/fruitbreaker.
const AppName = "fruitbreaker"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are the persisted player preferences.
type Settings struct {
	SoundEnabled bool    `yaml:"sound_enabled"`
	Volume       float64 `yaml:"volume"`     // 0.0 ~ 1.0
	Difficulty   string  `yaml:"difficulty"` // easy, normal or hard
}

// Defaults returns the settings used before anything is saved.
func Defaults() Settings {
	return Settings{
		SoundEnabled: true,
		Volume:       0.6,
		Difficulty:   "normal",
	}
}

// Manager loads and saves Settings. A Manager built with a nil gdata
// manager works in memory only.
type Manager struct {
	mu       sync.Mutex
	store    *gdata.Manager
	settings Settings
}

// Open opens the default per-user store. When the data directory cannot be
// used it returns an in-memory manager together with the error, so callers
// can log and continue.
func Open() (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		m, _ := NewManager(nil)
		return m, fmt.Errorf("settings: cannot open data dir: %w", err)
	}
	return NewManager(store)
}

// NewManager creates a manager over store and loads the saved settings.
func NewManager(store *gdata.Manager) (*Manager, error) {
	m := &Manager{store: store, settings: Defaults()}
	if err := m.Load(); err != nil {
		return m, err
	}
	return m, nil
}

// Load reads the saved settings. Missing data keeps the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: cannot parse: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)
	m.settings = loaded
	return nil
}

// Save writes the current settings. It is a no-op in memory-only mode.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	return nil
}

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// SetSoundEnabled changes the sound switch. Call Save to persist.
func (m *Manager) SetSoundEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.SoundEnabled = enabled
}

// SetVolume changes the volume, clamped to [0, 1]. Call Save to persist.
func (m *Manager) SetVolume(volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.Volume = clampVolume(volume)
}

// SetDifficulty changes the default difficulty preset. Call Save to persist.
func (m *Manager) SetDifficulty(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.Difficulty = name
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
