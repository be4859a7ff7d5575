// Package layout provides the built-in skeleton layouts for skelgen gen.
package layout

import (
	"fmt"
	"strings"

	"github.com/skelgen/cli/internal/scaffold"
)

// Layout represents a built-in skeleton layout with its metadata.
type Layout struct {
	// Name is the layout identifier (flutter-app, admin-panel).
	Name string

	// Description explains what the layout scaffolds.
	Description string

	// UseCase describes when to use this layout.
	UseCase string

	// Message is the one-line success message printed after generation.
	Message string

	// Default indicates if this is the default layout when none is named.
	Default bool

	// Tree is the declarative directory/file skeleton.
	Tree scaffold.Tree
}

// DefaultLayoutName is the layout used when none is specified.
const DefaultLayoutName = "flutter-app"

// layouts is the internal registry of available layouts.
var layouts = map[string]Layout{
	"flutter-app": {
		Name:        "flutter-app",
		Description: "Flutter mobile app skeleton under lib/ (clean architecture)",
		UseCase:     "Mobile app projects following the data/domain/presentation split",
		Message:     "Flutter project structure generated successfully!",
		Default:     true,
		Tree:        flutterAppTree,
	},
	"admin-panel": {
		Name:        "admin-panel",
		Description: "Next.js admin panel skeleton under admin-panel/ (app router)",
		UseCase:     "Web admin panels with app-router pages, API routes and shared components",
		Message:     "Admin panel project structure created successfully!",
		Default:     false,
		Tree:        adminPanelTree,
	},
}

// Get returns a layout by name.
// Returns an error if the layout is not found.
func Get(name string) (Layout, error) {
	l, ok := layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q; valid layouts: %s", name, strings.Join(Names(), ", "))
	}
	return l, nil
}

// List returns all available layouts.
func List() []Layout {
	return []Layout{
		layouts["flutter-app"],
		layouts["admin-panel"],
	}
}

// GetDefault returns the default layout.
func GetDefault() Layout {
	return layouts[DefaultLayoutName]
}

// Names returns all layout names.
func Names() []string {
	return []string{"flutter-app", "admin-panel"}
}
