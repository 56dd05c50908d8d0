package db

import (
	"database/sql"
	"sync"

	"github.com/marquee-labs/marquee/internal/model"
)

// memStore is an in-memory Store used by handler tests, so endpoints can be
// exercised through httptest without Postgres or Redis. It mirrors the
// pgStore semantics that matter to callers: create appends to the stored rule
// order, update keeps a rule's position, reorder rewrites the order.
type memStore struct {
	mu sync.Mutex

	nextUserID    int
	nextRuleID    int
	nextDisplayID int

	users    []model.User
	rules    []model.Rule
	displays []model.Display
	settings model.ScheduleSettings
}

var _ Store = (*memStore)(nil)

func NewMemStore() Store {
	return &memStore{nextUserID: 1, nextRuleID: 1, nextDisplayID: 1}
}

func (m *memStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := model.User{ID: m.nextUserID, Email: email, HashedPassword: hashedPassword, Name: name}
	m.nextUserID++
	m.users = append(m.users, u)
	return u.ID, nil
}

func (m *memStore) GetUserByEmail(email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) GetUserByID(id int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) UpdateUserProfile(id int, email string, name *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Email = email
			m.users[i].Name = name
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memStore) ListRules() ([]model.Rule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Rule, len(m.rules))
	copy(out, m.rules)
	return out, nil
}

func (m *memStore) GetRuleByID(id int) (model.Rule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rules {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Rule{}, sql.ErrNoRows
}

func (m *memStore) CreateRule(name string, days []string, startTime, endTime string, menu, slideshow *string, enabled bool) (model.Rule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := model.Rule{
		ID:        m.nextRuleID,
		Name:      name,
		Days:      append([]string(nil), days...),
		StartTime: startTime,
		EndTime:   endTime,
		Menu:      emptyToNil(menu),
		Slideshow: emptyToNil(slideshow),
		Enabled:   enabled,
		Position:  len(m.rules) + 1,
	}
	m.nextRuleID++
	m.rules = append(m.rules, r)
	return r, nil
}

func (m *memStore) UpdateRule(id int, name *string, days []string, startTime, endTime, menu, slideshow *string, enabled *bool) (model.Rule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rules {
		if m.rules[i].ID != id {
			continue
		}
		r := &m.rules[i]
		if name != nil {
			r.Name = *name
		}
		if days != nil {
			r.Days = append([]string(nil), days...)
		}
		if startTime != nil {
			r.StartTime = *startTime
		}
		if endTime != nil {
			r.EndTime = *endTime
		}
		if menu != nil {
			r.Menu = emptyToNil(menu)
		}
		if slideshow != nil {
			r.Slideshow = emptyToNil(slideshow)
		}
		if enabled != nil {
			r.Enabled = *enabled
		}
		return *r, nil
	}
	return model.Rule{}, sql.ErrNoRows
}

func (m *memStore) DeleteRule(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rules {
		if m.rules[i].ID == id {
			m.rules = append(m.rules[:i], m.rules[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memStore) ReorderRules(ruleIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	byID := make(map[int]model.Rule, len(m.rules))
	for _, r := range m.rules {
		byID[r.ID] = r
	}
	var out []model.Rule
	for i, id := range ruleIDs {
		if r, ok := byID[id]; ok {
			r.Position = i + 1
			out = append(out, r)
			delete(byID, id)
		}
	}
	// rules missing from the request keep their relative order at the end
	for _, r := range m.rules {
		if _, ok := byID[r.ID]; ok {
			r.Position = len(out) + 1
			out = append(out, r)
		}
	}
	m.rules = out
	return nil
}

func (m *memStore) GetScheduleSettings() (model.ScheduleSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *memStore) UpdateScheduleSettings(enabled bool, defaults model.Defaults) (model.ScheduleSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = model.ScheduleSettings{Enabled: enabled, Defaults: defaults}
	return m.settings, nil
}

func (m *memStore) GetScheduleConfig() (model.ScheduleConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rules := make([]model.Rule, len(m.rules))
	copy(rules, m.rules)
	return model.ScheduleConfig{
		Enabled:  m.settings.Enabled,
		Rules:    rules,
		Defaults: m.settings.Defaults,
	}, nil
}

func (m *memStore) ListDisplays() ([]model.Display, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Display, len(m.displays))
	copy(out, m.displays)
	return out, nil
}

func (m *memStore) GetDisplayByID(id int) (model.Display, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.displays {
		if d.ID == id {
			return d, nil
		}
	}
	return model.Display{}, sql.ErrNoRows
}

func (m *memStore) GetDisplayByDeviceID(deviceID string) (model.Display, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.displays {
		if d.DeviceID != nil && *d.DeviceID == deviceID {
			return d, nil
		}
	}
	return model.Display{}, sql.ErrNoRows
}

func (m *memStore) CreateDisplay(name string, location *string, createdBy int) (model.Display, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := model.Display{ID: m.nextDisplayID, Name: name, Location: location, CreatedBy: createdBy}
	m.nextDisplayID++
	m.displays = append(m.displays, d)
	return d, nil
}

func (m *memStore) UpdateDisplay(id int, name, location *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.displays {
		if m.displays[i].ID == id {
			if name != nil {
				m.displays[i].Name = *name
			}
			if location != nil {
				m.displays[i].Location = location
			}
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memStore) DeleteDisplay(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.displays {
		if m.displays[i].ID == id {
			m.displays = append(m.displays[:i], m.displays[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memStore) PairDisplay(id int, deviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.displays {
		if m.displays[i].ID == id {
			m.displays[i].DeviceID = &deviceID
			m.displays[i].Paired = true
			return nil
		}
	}
	return sql.ErrNoRows
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
