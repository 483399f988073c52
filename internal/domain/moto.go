package domain

import "time"

// Moto is a motorcycle in the rental fleet. Identifier is the business
// key used by the API; LicensePlate is unique across the fleet.
type Moto struct {
	ID           int32  `json:"id"`
	Identifier   string `json:"identifier"`
	Year         int32  `json:"year"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
}

// MotoRegisteredEvent is published to the broker when a motorcycle with
// a 2024 model year is registered.
type MotoRegisteredEvent struct {
	Identifier   string    `json:"identifier"`
	Year         int32     `json:"year"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"license_plate"`
	NotifiedAt   time.Time `json:"notified_at"`
}

// MotoNotification is the stored record the broker consumer writes for
// each registration event it receives.
type MotoNotification struct {
	ID             string    `json:"id"`
	MotoIdentifier string    `json:"moto_identifier"`
	Year           int32     `json:"year"`
	Model          string    `json:"model"`
	LicensePlate   string    `json:"license_plate"`
	Message        string    `json:"message"`
	NotifiedAt     time.Time `json:"notified_at"`
	CreatedOn      time.Time `json:"created_on"`
}
