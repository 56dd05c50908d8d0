package db

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/marquee-labs/marquee/internal/model"
	redisclient "github.com/marquee-labs/marquee/internal/redis"
)

// GetScheduleSettings reads the single settings row (master switch plus
// defaults). The row is seeded by the migrations, so it always exists.
func (s *pgStore) GetScheduleSettings() (model.ScheduleSettings, error) {
	var out model.ScheduleSettings
	const q = `
	SELECT enabled, default_menu, default_slideshow, default_background, default_theme, updated_at
	  FROM schedule_settings
	 WHERE id = 1;`
	if err := s.db.Get(&out, q); err != nil {
		log.Error().Err(err).Msg("GetScheduleSettings failed")
		return model.ScheduleSettings{}, err
	}
	return out, nil
}

func (s *pgStore) UpdateScheduleSettings(enabled bool, defaults model.Defaults) (model.ScheduleSettings, error) {
	var out model.ScheduleSettings
	const q = `
	UPDATE schedule_settings
	   SET enabled            = $1,
	       default_menu       = $2,
	       default_slideshow  = $3,
	       default_background = $4,
	       default_theme      = $5,
	       updated_at         = now()
	 WHERE id = 1
	RETURNING enabled, default_menu, default_slideshow, default_background, default_theme, updated_at;`
	if err := s.db.Get(&out, q, enabled, defaults.Menu, defaults.Slideshow, defaults.Background, defaults.Theme); err != nil {
		log.Error().Err(err).Msg("UpdateScheduleSettings failed")
		return model.ScheduleSettings{}, err
	}
	redisclient.InvalidateScheduleConfig(context.Background())
	return out, nil
}

// GetScheduleConfig returns the snapshot the resolver consumes: the literal
// persisted settings and the full rule list in stored order, never
// pre-filtered. Snapshots are cached in Redis and invalidated by every
// rule/settings write; a cache or Redis failure falls through to Postgres.
func (s *pgStore) GetScheduleConfig() (model.ScheduleConfig, error) {
	ctx := context.Background()

	if data := redisclient.GetScheduleConfig(ctx); data != nil {
		var cached model.ScheduleConfig
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		log.Warn().Msg("discarding unreadable cached schedule config")
	}

	settings, err := s.GetScheduleSettings()
	if err != nil {
		return model.ScheduleConfig{}, err
	}
	rules, err := s.ListRules()
	if err != nil {
		return model.ScheduleConfig{}, err
	}

	cfg := model.ScheduleConfig{
		Enabled:  settings.Enabled,
		Rules:    rules,
		Defaults: settings.Defaults,
	}
	if data, err := json.Marshal(cfg); err == nil {
		redisclient.SetScheduleConfig(ctx, data)
	}
	return cfg, nil
}
