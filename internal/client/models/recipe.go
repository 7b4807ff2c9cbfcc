// Package models defines the records the RecipeBox client exchanges with
// the server.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Recipe struct {
	ID          string    `json:"id"`
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

// String is the one-line form used in listings.
func (r Recipe) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s", r.ID, r.Title)
	if r.Category != "" {
		fmt.Fprintf(&b, " [%s]", r.Category)
	}
	if r.Time != "" {
		fmt.Fprintf(&b, " (%s)", r.Time)
	}
	return b.String()
}

// Input returns the editable fields of r, ready to be sent back.
func (r Recipe) Input() RecipeInput {
	servings := r.Servings
	return RecipeInput{
		Title:       r.Title,
		Time:        r.Time,
		Servings:    &servings,
		Category:    r.Category,
		SourceURL:   r.SourceURL,
		ImageURL:    r.ImageURL,
		ImagePath:   r.ImagePath,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Notes:       r.Notes,
	}
}

// RecipeInput is the body of create and update requests. A nil Servings
// lets the server apply its default.
type RecipeInput struct {
	Title       string   `json:"title"`
	Time        string   `json:"time,omitempty"`
	Servings    *int     `json:"servings,omitempty"`
	Category    string   `json:"category,omitempty"`
	SourceURL   string   `json:"sourceUrl,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ImagePath   string   `json:"imagePath,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Notes       string   `json:"notes,omitempty"`
}

// ParseServings reads a servings answer. An empty answer means "not set".
func ParseServings(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("servings must be a number: %q", s)
	}
	return &n, nil
}

// SplitLines turns a multi-line answer into list entries, dropping blank
// lines.
func SplitLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
