package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftoff/internal/launch"
	"github.com/five82/liftoff/internal/state"
)

// imageLoad tracks whether a mission image could be fetched.
type imageLoad int

const (
	imageUnknown imageLoad = iota
	imagePending
	imageLoaded
	imageFailed
)

// PlaceholderImage stands in for a missing or broken mission image.
const PlaceholderImage = "🚀 Mission Patch"

// imageStates is keyed by URL; a failure only affects that URL.
type imageStates map[string]imageLoad

func (s imageStates) get(url string) imageLoad {
	return s[url]
}

// start marks url pending and reports whether a probe should be issued.
func (s imageStates) start(url string) bool {
	if url == "" || s[url] != imageUnknown {
		return false
	}
	s[url] = imagePending
	return true
}

func (s imageStates) finish(url string, err error) {
	if err != nil {
		s[url] = imageFailed
		return
	}
	s[url] = imageLoaded
}

// resolveImage applies the view's priority order and degrades a failed image
// to none.
func (m Model) resolveImage(l launch.Launch, view launch.View) (string, imageLoad, bool) {
	url, ok := l.Image(view)
	if !ok {
		return "", imageUnknown, false
	}
	load := m.images.get(url)
	if load == imageFailed {
		return "", imageFailed, false
	}
	return url, load, true
}

// probeImage starts a reachability check for the image of l in view.
func (m Model) probeImage(l launch.Launch, view launch.View) tea.Cmd {
	if m.svc.Prober == nil {
		return nil
	}
	url, ok := l.Image(view)
	if !ok || !m.images.start(url) {
		return nil
	}
	return probeCmd(m.ctx, m.svc.Prober, url)
}

// probeCursor probes the image the current phase is showing.
func (m Model) probeCursor() tea.Cmd {
	switch m.snapshot.Phase {
	case state.PhaseBrowsing:
		if l, ok := m.cursorLaunch(); ok {
			return m.probeImage(l, launch.ListView)
		}
	case state.PhaseDetail:
		if m.snapshot.HasSelected {
			return m.probeImage(m.snapshot.Selected, launch.DetailView)
		}
	}
	return nil
}

// imageLine renders the one-line image indicator used by cards and detail.
func (m Model) imageLine(l launch.Launch, view launch.View, width int) string {
	url, load, ok := m.resolveImage(l, view)
	if !ok {
		return PlaceholderImage
	}
	switch load {
	case imagePending:
		return "⋯ " + truncateMiddle(url, width-2)
	case imageLoaded:
		return "🖼 " + truncateMiddle(url, width-3)
	default:
		return truncateMiddle(url, width)
	}
}
