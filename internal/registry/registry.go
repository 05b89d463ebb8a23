// Package registry provides a global registry for theme factories.
// Themes register themselves in init() functions, allowing hosts to
// discover and instantiate skins without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/star-shooter/internal/theme"
)

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a theme.
type Factory func() theme.Theme

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a theme factory to the registry.
// Typically called from a theme's init() function.
// Panics if a theme with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ThemeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a theme by its ID.
// Returns an error if the theme ID is not registered.
func Create(id string) (theme.Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown theme %q", id)
	}

	return f(), nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
