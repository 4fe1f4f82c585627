// Package collapse contains the pure business logic for the collapse engine:
// selection guards, window folding and the synthesis prompt. No I/O.
package collapse

import (
	"github.com/example/hearth/internal/models"
)

// MinimumClans is the smallest number of active source clans a collapse
// accepts. Below it, collapse is a quiet no-op with no effects.
const MinimumClans = 2

// SelectClans filters the requested clan ids down to those present in the
// project and currently active, preserving project list order for ids that
// were requested.
func SelectClans(project *models.Project, clanIDs []string) []models.Clan {
	requested := make(map[string]bool, len(clanIDs))
	for _, id := range clanIDs {
		requested[id] = true
	}

	var selected []models.Clan
	for _, c := range project.Clans {
		if requested[c.ID] && c.State == models.ClanActive {
			selected = append(selected, c)
		}
	}
	return selected
}

// CanCollapse evaluates whether a selection is collapsible.
func CanCollapse(selected []models.Clan) bool {
	return len(selected) >= MinimumClans
}
