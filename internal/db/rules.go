package db

import (
	"context"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/marquee-labs/marquee/internal/model"
	redisclient "github.com/marquee-labs/marquee/internal/redis"
)

const ruleColumns = `
	id, name, days, start_time, end_time, menu, slideshow, enabled, position,
	created_at, updated_at`

// ListRules returns every rule in stored order. Order is load-bearing: the
// resolver picks the first matching rule, so this is the only ordering the
// rest of the system ever sees.
func (s *pgStore) ListRules() ([]model.Rule, error) {
	var out []model.Rule
	const q = `
	SELECT ` + ruleColumns + `
	  FROM rules
	 ORDER BY position, id;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListRules failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) GetRuleByID(id int) (model.Rule, error) {
	var r model.Rule
	const q = `SELECT ` + ruleColumns + ` FROM rules WHERE id = $1;`
	if err := s.db.Get(&r, q, id); err != nil {
		log.Error().Err(err).Int("rule_id", id).Msg("GetRuleByID failed")
		return model.Rule{}, err
	}
	return r, nil
}

// CreateRule appends a new rule to the end of the stored order.
func (s *pgStore) CreateRule(name string, days []string, startTime, endTime string, menu, slideshow *string, enabled bool) (model.Rule, error) {
	var r model.Rule
	const q = `
	INSERT INTO rules (name, days, start_time, end_time, menu, slideshow, enabled, position, created_at, updated_at)
	VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7,
	        (SELECT COALESCE(MAX(position), 0) + 1 FROM rules), now(), now())
	RETURNING ` + ruleColumns + `;`
	if err := s.db.Get(&r, q, name, pq.Array(days), startTime, endTime, menu, slideshow, enabled); err != nil {
		log.Error().Err(err).Msg("CreateRule failed")
		return model.Rule{}, err
	}
	redisclient.InvalidateScheduleConfig(context.Background())
	return r, nil
}

// UpdateRule changes a rule's fields in place; nil pointers leave a field
// untouched and an explicit empty string clears a content reference. The
// rule keeps its position in the stored order.
func (s *pgStore) UpdateRule(id int, name *string, days []string, startTime, endTime, menu, slideshow *string, enabled *bool) (model.Rule, error) {
	var r model.Rule
	const q = `
	UPDATE rules
	   SET name       = COALESCE($2, name),
	       days       = COALESCE($3::text[], days),
	       start_time = COALESCE($4, start_time),
	       end_time   = COALESCE($5, end_time),
	       menu       = CASE WHEN $6::text IS NULL THEN menu ELSE NULLIF($6, '') END,
	       slideshow  = CASE WHEN $7::text IS NULL THEN slideshow ELSE NULLIF($7, '') END,
	       enabled    = COALESCE($8, enabled),
	       updated_at = now()
	 WHERE id = $1
	RETURNING ` + ruleColumns + `;`
	var daysArg interface{}
	if days != nil {
		daysArg = pq.Array(days)
	}
	if err := s.db.Get(&r, q, id, name, daysArg, startTime, endTime, menu, slideshow, enabled); err != nil {
		log.Error().Err(err).Int("rule_id", id).Msg("UpdateRule failed")
		return model.Rule{}, err
	}
	redisclient.InvalidateScheduleConfig(context.Background())
	return r, nil
}

// DeleteRule removes a rule; the remaining rules keep their relative order.
func (s *pgStore) DeleteRule(id int) error {
	if _, err := s.db.Exec(`DELETE FROM rules WHERE id = $1;`, id); err != nil {
		log.Error().Err(err).Int("rule_id", id).Msg("DeleteRule failed")
		return err
	}
	redisclient.InvalidateScheduleConfig(context.Background())
	return nil
}

// ReorderRules rewrites the stored order to match ruleIDs. Reordering is an
// explicit operation because order decides which of two overlapping rules
// wins.
func (s *pgStore) ReorderRules(ruleIDs []int) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// shift everything out of the way first so the new positions never
	// collide with old ones mid-transaction
	count := len(ruleIDs)
	if _, err := tx.Exec(`
        UPDATE rules
           SET position = position + $1;
    `, count); err != nil {
		return err
	}

	for idx, ruleID := range ruleIDs {
		newPos := idx + 1
		if _, err := tx.Exec(`
            UPDATE rules
               SET position = $1
             WHERE id = $2;
        `, newPos, ruleID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Msg("ReorderRules commit failed")
		return err
	}

	// invalidate only after the new order is visible to other readers; a
	// cache miss served between invalidate and commit would re-cache the
	// old order for the full TTL
	redisclient.InvalidateScheduleConfig(context.Background())
	return nil
}
