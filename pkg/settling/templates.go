package settling

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed orientations
var orientationsFS embed.FS

// templateCache holds parsed orientation templates keyed by name.
// Templates are embedded, so a cache miss costs one FS read.
type templateCache struct {
	mu        sync.RWMutex
	templates map[string]string
}

var cache = &templateCache{templates: make(map[string]string)}

// loadTemplate returns the named orientation template. Unknown names
// fall back to "core"; a missing core template is a build defect.
func loadTemplate(name string) (string, error) {
	cache.mu.RLock()
	if t, ok := cache.templates[name]; ok {
		cache.mu.RUnlock()
		return t, nil
	}
	cache.mu.RUnlock()

	raw, err := orientationsFS.ReadFile("orientations/" + name + ".md")
	if err != nil {
		if name != "core" {
			return loadTemplate("core")
		}
		return "", fmt.Errorf("core orientation template missing: %w", err)
	}

	cache.mu.Lock()
	cache.templates[name] = string(raw)
	cache.mu.Unlock()
	return string(raw), nil
}

// clearTemplateCache resets the cache. Test hook.
func clearTemplateCache() {
	cache.mu.Lock()
	cache.templates = make(map[string]string)
	cache.mu.Unlock()
}
