package client

import (
	"net/url"
	"strings"
)

// PlaceholderImage stands in for places that were shared without photos.
const PlaceholderImage = "https://placehold.co/600x400?text=No+Image"

// ResolveImages turns server image paths into absolute URLs. Relative paths
// are joined onto base, absolute URLs pass through, and an empty result is
// replaced by the placeholder.
func ResolveImages(base string, images []string) []string {
	base = strings.TrimRight(base, "/")

	out := make([]string, 0, len(images))
	for _, img := range images {
		img = strings.TrimSpace(img)
		if img == "" {
			continue
		}
		out = append(out, resolveImage(base, img))
	}
	if len(out) == 0 {
		return []string{PlaceholderImage}
	}
	return out
}

func resolveImage(base, img string) string {
	if strings.HasPrefix(img, "//") {
		return img
	}
	if u, err := url.Parse(img); err == nil && u.Scheme != "" {
		return img
	}
	return base + "/" + strings.TrimLeft(img, "/")
}
