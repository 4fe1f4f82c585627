// Package stamp renders the compact single-line status string for a clan.
// Rendering is pure: the caller supplies the clan state, the resolved hash
// and the render time, so identical inputs always yield identical stamps.
package stamp

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/example/hearth/internal/models"
)

// Sentinel is the fixed stamp returned for a clan that does not exist.
const Sentinel = "[OLO|clan-not-found]"

// maxPinLen is the pin truncation length.
const maxPinLen = 20

// gateGlyphs maps a gate state to its stamp glyph.
var gateGlyphs = map[string]string{
	models.GateOpen: "○",
	models.GateYes:  "✓",
	models.GateNo:   "✗",
	models.GateHalf: "◐",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Render composes the stamp line from a clan's current state.
func Render(branch string, state *models.ClanState, shortHash string, at time.Time) string {
	return fmt.Sprintf("[OLO|🌿%s|📍%d|🔒%s|📌%s|#%s|⏱%s]",
		branch,
		state.Depth,
		Gates(state.Gates),
		NormalizePin(state.Pin),
		shortHash,
		CompactTimestamp(at),
	)
}

// Gates renders a gate checklist as one glyph per gate, in gate order.
func Gates(gates []models.Gate) string {
	var b strings.Builder
	for _, g := range gates {
		if glyph, ok := gateGlyphs[g.State]; ok {
			b.WriteString(glyph)
		} else {
			b.WriteString("?")
		}
	}
	return b.String()
}

// NormalizePin truncates the pin to 20 characters and replaces whitespace
// runs with hyphens.
func NormalizePin(pin string) string {
	runes := []rune(pin)
	if len(runes) > maxPinLen {
		runes = runes[:maxPinLen]
	}
	return whitespaceRun.ReplaceAllString(string(runes), "-")
}

// CompactTimestamp formats a time as ISO-8601 at minute resolution with all
// punctuation stripped, e.g. 20260830T1542.
func CompactTimestamp(at time.Time) string {
	iso := at.Format("2006-01-02T15:04")
	iso = strings.ReplaceAll(iso, "-", "")
	return strings.ReplaceAll(iso, ":", "")
}
