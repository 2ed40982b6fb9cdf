// Package seed holds the roster a fresh session starts with.
package seed

import "github.com/mmynk/eatsplit/internal/models"

// Friends returns a fresh copy of the initial roster.
func Friends() []models.Friend {
	return []models.Friend{
		{
			ID:      "118836",
			Name:    "Clark",
			Image:   "https://i.pravatar.cc/48?u=118836",
			Balance: -7,
		},
		{
			ID:      "933372",
			Name:    "Sarah",
			Image:   "https://i.pravatar.cc/48?u=933372",
			Balance: 20,
		},
		{
			ID:      "499476",
			Name:    "Anthony",
			Image:   "https://i.pravatar.cc/48?u=499476",
			Balance: 0,
		},
	}
}
