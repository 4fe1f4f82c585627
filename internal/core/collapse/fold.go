package collapse

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/hearth/internal/models"
)

// GenerateWindowID derives a window id from the creation time.
func GenerateWindowID(at time.Time) string {
	return fmt.Sprintf("win-%d", at.UnixMilli())
}

// FoldWindow builds the new window produced by a collapse: the parent
// window's constants, in their original order, followed by the newly
// produced ones. The result's constant list is therefore always a sequence
// superset of the parent's.
func FoldWindow(parent *models.Window, id, name, branch, mergeHash string, produced []models.Constant) models.Window {
	constants := make([]models.Constant, 0, len(parent.Constants)+len(produced))
	constants = append(constants, parent.Constants...)
	constants = append(constants, produced...)

	return models.Window{
		ID:               id,
		Name:             name,
		ParentWindow:     parent.ID,
		Constants:        constants,
		GitBranch:        branch,
		GitCommitAtBirth: mergeHash,
	}
}

// FreezeCommitMessage is the message used for each per-clan freeze commit.
func FreezeCommitMessage(windowName string) string {
	return "FROZEN: collapsed into " + windowName
}

// MergeCommitMessage is the message used for the project-root constants
// commit that marks the collapse itself.
func MergeCommitMessage(clanNames []string, windowName string) string {
	return fmt.Sprintf("COLLAPSE: %s → %s", strings.Join(clanNames, " + "), windowName)
}

// BuildConstant snapshots a frozen clan's state into a constant.
func BuildConstant(id string, c models.Clan, state *models.ClanState, tag, commit string) models.Constant {
	constant := models.Constant{
		SchemaVersion: models.SchemaVersion,
		ID:            id,
		SourceName:    c.Name,
		Summary:       "",
		GateSnapshot:  []models.Gate{},
		GitTag:        tag,
		GitCommit:     commit,
		Depth:         0,
	}
	if state != nil {
		constant.Summary = state.Pin
		if state.Gates != nil {
			constant.GateSnapshot = state.Gates
		}
		constant.Depth = state.Depth
	}
	return constant
}
