package models

import (
	"booking-api/core/calendar"
)

// Home is the canonical record of a bookable unit.
type Home struct {
	// ID is assigned by the store on insert. Zero means "not yet stored".
	ID int64 `json:"id"`
	// Name is the display name supplied by the caller.
	Name string `json:"name"`
	// AvailableSlots are the dates on which the home can be booked.
	AvailableSlots []calendar.Date `json:"availableSlots"`
}

// HomeInput is the insert payload accepted over HTTP and from the message broker.
type HomeInput struct {
	Name           string          `json:"name" validate:"required,max=256"`
	AvailableSlots []calendar.Date `json:"availableSlots" validate:"dive,required"`
}

// HomeOutput is the wire representation of a stored home.
type HomeOutput struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	AvailableSlots []calendar.Date `json:"availableSlots"`
}

// ToHome converts the payload into a domain record without an identity.
func (in HomeInput) ToHome() Home {
	return Home{
		Name:           in.Name,
		AvailableSlots: in.AvailableSlots,
	}
}

// NewHomeOutput converts a stored home into its wire representation.
func NewHomeOutput(h Home) HomeOutput {
	slots := h.AvailableSlots
	if slots == nil {
		slots = []calendar.Date{}
	}
	return HomeOutput{
		ID:             h.ID,
		Name:           h.Name,
		AvailableSlots: slots,
	}
}

// NewHomeOutputs converts a list of stored homes. The result is never nil.
func NewHomeOutputs(homes []Home) []HomeOutput {
	out := make([]HomeOutput, 0, len(homes))
	for _, h := range homes {
		out = append(out, NewHomeOutput(h))
	}
	return out
}
