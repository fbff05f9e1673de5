package model

import (
	"time"
)

// Category represents a colored label; tasks reference zero or more by id
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
