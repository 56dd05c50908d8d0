// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/marquee-labs/marquee/internal/model"
)

type Store interface {
	// account functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// rule functions; rules keep a persisted position because the resolver
	// breaks ties by stored order
	ListRules() ([]model.Rule, error)
	GetRuleByID(id int) (model.Rule, error)
	CreateRule(name string, days []string, startTime, endTime string, menu, slideshow *string, enabled bool) (model.Rule, error)
	UpdateRule(id int, name *string, days []string, startTime, endTime, menu, slideshow *string, enabled *bool) (model.Rule, error)
	DeleteRule(id int) error
	ReorderRules(ruleIDs []int) error

	// schedule settings (master switch + defaults) and the resolver snapshot
	GetScheduleSettings() (model.ScheduleSettings, error)
	UpdateScheduleSettings(enabled bool, defaults model.Defaults) (model.ScheduleSettings, error)
	GetScheduleConfig() (model.ScheduleConfig, error)

	// display functions
	ListDisplays() ([]model.Display, error)
	GetDisplayByID(id int) (model.Display, error)
	GetDisplayByDeviceID(deviceID string) (model.Display, error)
	CreateDisplay(name string, location *string, createdBy int) (model.Display, error)
	UpdateDisplay(id int, name, location *string) error
	DeleteDisplay(id int) error
	PairDisplay(id int, deviceID string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
// required so linter doesn't complain
var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}
