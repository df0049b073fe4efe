package model

import (
	"fmt"
	"time"
)

const (
	EntityName = "booth"

	CategoryDiamond = "diamond"
	CategoryGold    = "gold"
	CategorySilver  = "silver"
	CategoryOther   = "other"

	StatusEmpty    = "empty"
	StatusOccupied = "occupied"
)

var (
	Categories = []string{CategoryDiamond, CategoryGold, CategorySilver, CategoryOther}
	Statuses   = []string{StatusEmpty, StatusOccupied}
)

// Position is a percentage coordinate pair placing a booth on the floorplan
// image. Presence is optional per booth.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Booth mirrors the backend record. The ID is assigned by the backend and
// never generated here. Occupant fields are independent of Status: an empty
// booth may carry company details and an occupied one may not.
type Booth struct {
	ID               string    `json:"_id"`
	Number           int       `json:"number"`
	Category         string    `json:"category"`
	Status           string    `json:"status"`
	CompanyName      string    `json:"companyName,omitempty"`
	CompanyWebsite   string    `json:"companyWebsite,omitempty"`
	CompanyShortText string    `json:"companyShortText,omitempty"`
	ContactName      string    `json:"contactName,omitempty"`
	ContactPhone     string    `json:"contactPhone,omitempty"`
	ContactEmail     string    `json:"contactEmail,omitempty"`
	CompanyLogoURL   string    `json:"companyLogoUrl,omitempty"`
	Position         *Position `json:"position,omitempty"`
}

func (b Booth) Occupied() bool {
	return b.Status == StatusOccupied
}

// DisplayName is the free-text snapshot sent along with a booking request.
func (b Booth) DisplayName() string {
	return fmt.Sprintf("Booth %d", b.Number)
}

// BookingRequest is a record of expressed interest in a booth. Created once
// by a public booking action, never updated, only listed by an administrator.
type BookingRequest struct {
	ID          string    `json:"_id"`
	BoothNumber int       `json:"boothNumber"`
	BoothName   string    `json:"boothName"`
	CreatedAt   time.Time `json:"createdAt"`
}
