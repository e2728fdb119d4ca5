// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package profile renders the HTML fragments of a profile's career section.
package profile

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/danielhkuo/profilefeed/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("profile").Funcs(template.FuncMap{
	"classes": classes,
}).ParseFS(templateFS, "templates/*.html"))

// Card is one experience entry. The edit button renders only for AuthUser;
// it carries the experience id for the page script to act on.
type Card struct {
	ID       string
	Position string
	Company  string
	Type     string
	Class    string
	AuthUser bool
}

// Section wraps a list of cards under a title
type Section struct {
	ProfileID string
	Title     string
	Class     string
	AuthUser  bool
	Cards     []Card
}

// CardFromExperience builds the card for a stored experience
func CardFromExperience(e models.Experience, authUser bool) Card {
	return Card{
		ID:       e.ID,
		Position: e.Position,
		Company:  e.Company,
		Type:     e.Type,
		AuthUser: authUser,
	}
}

// ExperienceSection builds the career section for a profile
func ExperienceSection(profileID string, experiences []models.Experience, authUser bool) Section {
	s := Section{
		ProfileID: profileID,
		Title:     "Experience",
		AuthUser:  authUser,
		Cards:     make([]Card, 0, len(experiences)),
	}
	for _, e := range experiences {
		s.Cards = append(s.Cards, CardFromExperience(e, authUser))
	}
	return s
}

// RenderCard writes a single experience card
func RenderCard(w io.Writer, c Card) error {
	if err := templates.ExecuteTemplate(w, "card", c); err != nil {
		return fmt.Errorf("failed to render experience card: %w", err)
	}
	return nil
}

// RenderSection writes the section and every card in it
func RenderSection(w io.Writer, s Section) error {
	if err := templates.ExecuteTemplate(w, "section", s); err != nil {
		return fmt.Errorf("failed to render career section: %w", err)
	}
	return nil
}

// classes joins the base classes with any extra ones
func classes(base, extra string) string {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return base
	}
	return base + " " + extra
}
