package utils

import "strings"

// PlaceholderImage is shown when a gallery is empty or a path cannot be
// resolved.
const PlaceholderImage = "https://via.placeholder.com/600x400/cccccc/888888?text=Imagen+no+disponible"

// NextIndex advances a carousel one image, wrapping at the end. An empty
// gallery pins the index to 0.
func NextIndex(current, total int) int {
	if total <= 0 {
		return 0
	}
	return (normalizeIndex(current, total) + 1) % total
}

// PrevIndex steps a carousel back one image, wrapping at the start.
func PrevIndex(current, total int) int {
	if total <= 0 {
		return 0
	}
	return (normalizeIndex(current, total) - 1 + total) % total
}

// ClampIndex is the indicator-dot jump: any in-range index is kept, anything
// else falls back to 0.
func ClampIndex(index, total int) int {
	if total <= 0 || index < 0 || index >= total {
		return 0
	}
	return index
}

func normalizeIndex(current, total int) int {
	if current < 0 || current >= total {
		return 0
	}
	return current
}

// ResolveImageURL resolves an upstream image path for the browser: relative
// paths are anchored to the upstream origin, absolute URLs pass through, and
// anything else falls back to the placeholder.
func ResolveImageURL(origin, path string) string {
	switch {
	case strings.HasPrefix(path, "/"):
		return strings.TrimRight(origin, "/") + path
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return path
	default:
		return PlaceholderImage
	}
}

// ResolveImageURLs resolves a whole gallery.
func ResolveImageURLs(origin string, paths []string) []string {
	resolved := make([]string, len(paths))
	for i, p := range paths {
		resolved[i] = ResolveImageURL(origin, p)
	}
	return resolved
}
