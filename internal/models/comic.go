package models

import "time"

type Comic struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Chapter int    `json:"chapter"`
	// UpdateDay is the weekday the comic is expected to update, 0=Sunday..6=Saturday
	UpdateDay int      `json:"update_day"`
	Cover     string   `json:"cover,omitempty"`
	UserID    int      `json:"user_id"`
	Genres    []*Genre `json:"genres,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type ComicRequest struct {
	Title     string `json:"title" binding:"required"`
	Chapter   int    `json:"chapter" binding:"min=0"`
	UpdateDay int    `json:"update_day" binding:"min=0,max=6"`
	Cover     string `json:"cover"`
	GenreIDs  []int  `json:"genre_ids"`
}
