package models

import "time"

// DefaultServings is applied when a recipe is saved without servings.
const DefaultServings = 2

// Recipe is owned by exactly one user. Ingredients and Steps are never nil
// once read back from the store.
type Recipe struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Time        string    `json:"time"`
	Servings    int       `json:"servings"`
	Category    string    `json:"category"`
	SourceURL   string    `json:"sourceUrl"`
	ImageURL    string    `json:"imageUrl"`
	ImagePath   string    `json:"imagePath"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Notes       string    `json:"notes"`
	IsExtracted bool      `json:"isExtracted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RecipeInput is the mutable part of a recipe as accepted by create and
// update. A nil Servings means the client left it out.
type RecipeInput struct {
	Title       string   `json:"title"`
	Time        string   `json:"time"`
	Servings    *int     `json:"servings"`
	Category    string   `json:"category"`
	SourceURL   string   `json:"sourceUrl"`
	ImageURL    string   `json:"imageUrl"`
	ImagePath   string   `json:"imagePath"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Notes       string   `json:"notes"`
}

// Apply copies the input onto r, filling defaults for absent fields.
func (in RecipeInput) Apply(r *Recipe) {
	r.Title = in.Title
	r.Time = in.Time
	r.Servings = DefaultServings
	if in.Servings != nil {
		r.Servings = *in.Servings
	}
	r.Category = in.Category
	r.SourceURL = in.SourceURL
	r.ImageURL = in.ImageURL
	r.ImagePath = in.ImagePath
	r.Ingredients = nonNil(in.Ingredients)
	r.Steps = nonNil(in.Steps)
	r.Notes = in.Notes
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
