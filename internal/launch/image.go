package launch

import (
	"strings"

	"github.com/five82/liftoff/internal/spacex"
)

// View selects which image priority order applies.
type View int

const (
	// ListView favors the smallest image.
	ListView View = iota
	// DetailView favors the highest resolution.
	DetailView
)

// ResolveImage returns the first present candidate URL for view, or false
// when the launch has no usable image.
func ResolveImage(links *spacex.Links, view View) (string, bool) {
	if links == nil {
		return "", false
	}
	var candidates []string
	switch view {
	case DetailView:
		candidates = []string{
			links.Patch.Large,
			links.Patch.Small,
			first(links.Flickr.Original),
			first(links.Flickr.Small),
		}
	default:
		candidates = []string{
			links.Patch.Small,
			links.Patch.Large,
			first(links.Flickr.Small),
			first(links.Flickr.Original),
		}
	}
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c, true
		}
	}
	return "", false
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
