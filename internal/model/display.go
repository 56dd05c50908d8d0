package model

import "time"

// Display represents a physical screen: the kiosk itself or a paired remote
// device. Unpaired displays exist as records but cannot poll for content.
type Display struct {
	ID        int       `db:"id" json:"id"`
	DeviceID  *string   `db:"device_id" json:"device_id"`
	Name      string    `db:"name" json:"name"`
	Location  *string   `db:"location" json:"location"`
	Paired    bool      `db:"paired" json:"paired"`
	CreatedBy int       `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
