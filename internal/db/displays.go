package db

import (
	"github.com/rs/zerolog/log"

	"github.com/marquee-labs/marquee/internal/model"
)

const displayColumns = `
	id, device_id, name, location, paired, created_by, created_at, updated_at`

func (s *pgStore) ListDisplays() ([]model.Display, error) {
	var out []model.Display
	const q = `SELECT ` + displayColumns + ` FROM displays ORDER BY id;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListDisplays failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) GetDisplayByID(id int) (model.Display, error) {
	var d model.Display
	const q = `SELECT ` + displayColumns + ` FROM displays WHERE id = $1;`
	if err := s.db.Get(&d, q, id); err != nil {
		log.Error().Err(err).Int("display_id", id).Msg("GetDisplayByID failed")
		return model.Display{}, err
	}
	return d, nil
}

func (s *pgStore) GetDisplayByDeviceID(deviceID string) (model.Display, error) {
	var d model.Display
	const q = `SELECT ` + displayColumns + ` FROM displays WHERE device_id = $1;`
	if err := s.db.Get(&d, q, deviceID); err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("GetDisplayByDeviceID failed")
		return model.Display{}, err
	}
	return d, nil
}

func (s *pgStore) CreateDisplay(name string, location *string, createdBy int) (model.Display, error) {
	var d model.Display
	const q = `
	INSERT INTO displays (name, location, paired, created_by, created_at, updated_at)
	VALUES ($1, $2, false, $3, now(), now())
	RETURNING ` + displayColumns + `;`
	if err := s.db.Get(&d, q, name, location, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateDisplay failed")
		return model.Display{}, err
	}
	return d, nil
}

func (s *pgStore) UpdateDisplay(id int, name, location *string) error {
	const q = `
	UPDATE displays
	   SET name       = COALESCE($2, name),
	       location   = COALESCE($3, location),
	       updated_at = now()
	 WHERE id = $1;`
	if _, err := s.db.Exec(q, id, name, location); err != nil {
		log.Error().Err(err).Int("display_id", id).Msg("UpdateDisplay failed")
		return err
	}
	return nil
}

func (s *pgStore) DeleteDisplay(id int) error {
	if _, err := s.db.Exec(`DELETE FROM displays WHERE id = $1;`, id); err != nil {
		log.Error().Err(err).Int("display_id", id).Msg("DeleteDisplay failed")
		return err
	}
	return nil
}

// PairDisplay attaches a device id to a display record once the pairing code
// has been redeemed.
func (s *pgStore) PairDisplay(id int, deviceID string) error {
	const q = `
	UPDATE displays
	   SET device_id = $2, paired = true, updated_at = now()
	 WHERE id = $1;`
	if _, err := s.db.Exec(q, id, deviceID); err != nil {
		log.Error().Err(err).Int("display_id", id).Msg("PairDisplay failed")
		return err
	}
	return nil
}
