// Package domain contains the core data types for the Tourdesk backend.
// This package has no dependencies on other internal packages and is
// imported by repo, service, and handler.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tour is a bookable offering listed on the site: a guided tour, a hotel
// stay, or an event-management package. The layer stores what it is given;
// validation and uniqueness belong to the database.
type Tour struct {
	ID               uuid.UUID      `json:"id"`
	Title            string         `json:"title"`
	Location         string         `json:"location"`
	Category         string         `json:"category"`
	Price            float64        `json:"price"`
	Duration         string         `json:"duration"`
	ShortDescription string         `json:"short_description"`
	Description      string         `json:"description"`
	ImageURL         string         `json:"image_url"`
	Gallery          []string       `json:"gallery"`
	Itinerary        []ItineraryDay `json:"itinerary"`
	Inclusions       []string       `json:"inclusions"`
	Exclusions       []string       `json:"exclusions"`
	IsActive         bool           `json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ItineraryDay is one entry of a tour's day-by-day plan.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
