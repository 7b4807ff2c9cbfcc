package models

import "time"

type Favorite struct {
	UserID    int64
	RecipeID  string
	CreatedAt time.Time
}
