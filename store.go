package popup

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// positionObject is the gdata object all popup positions live under; each
// popup name is one property.
const positionObject = "popup"

// storedPosition is the YAML form of a saved position.
type storedPosition struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PositionStore remembers relative popup positions by name across runs.
// Without a gdata manager it keeps positions in memory only.
type PositionStore struct {
	manager *gdata.Manager // may be nil (in-memory mode)
	cache   map[string]Vec2
}

// NewPositionStore wraps a gdata manager. A nil manager gives an in-memory
// store.
func NewPositionStore(manager *gdata.Manager) *PositionStore {
	return &PositionStore{
		manager: manager,
		cache:   make(map[string]Vec2),
	}
}

// OpenPositionStore opens the gdata storage of appName. If the platform
// storage cannot be opened the store falls back to memory and the error is
// logged.
func OpenPositionStore(appName string) *PositionStore {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[popup] position store unavailable: %v (positions will not persist)", err)
		return NewPositionStore(nil)
	}
	return NewPositionStore(manager)
}

// Load returns the saved position for name. ok is false when nothing was saved.
func (s *PositionStore) Load(name string) (pos Vec2, ok bool, err error) {
	if cached, found := s.cache[name]; found {
		return cached, true, nil
	}
	if s.manager == nil || !s.manager.ObjectPropExists(positionObject, name) {
		return Vec2{}, false, nil
	}
	data, err := s.manager.LoadObjectProp(positionObject, name)
	if err != nil {
		return Vec2{}, false, fmt.Errorf("load position %q: %w", name, err)
	}
	var sp storedPosition
	if err := yaml.Unmarshal(data, &sp); err != nil {
		return Vec2{}, false, fmt.Errorf("unmarshal position %q: %w", name, err)
	}
	pos = Vec2{X: clamp01(sp.X), Y: clamp01(sp.Y)}
	s.cache[name] = pos
	return pos, true, nil
}

// Save records pos for name.
func (s *PositionStore) Save(name string, pos Vec2) error {
	s.cache[name] = pos
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(storedPosition{X: pos.X, Y: pos.Y})
	if err != nil {
		return fmt.Errorf("marshal position %q: %w", name, err)
	}
	if err := s.manager.SaveObjectProp(positionObject, name, data); err != nil {
		return fmt.Errorf("save position %q: %w", name, err)
	}
	return nil
}
