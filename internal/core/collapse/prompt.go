package collapse

import (
	"fmt"
	"strings"

	"github.com/example/hearth/internal/models"
)

// PromptBanner is the trailing line of every synthesis prompt, instructing
// downstream consumers to build on the listed constants.
const PromptBanner = "=== BUILD ON THESE CONSTANTS ==="

// gateStateCodes maps a gate state to its one-letter prompt code.
var gateStateCodes = map[string]string{
	models.GateOpen: "o",
	models.GateYes:  "y",
	models.GateNo:   "n",
	models.GateHalf: "h",
}

// GateStateCode returns the one-letter code for a gate state, or "?" for an
// unrecognized state.
func GateStateCode(state string) string {
	if code, ok := gateStateCodes[state]; ok {
		return code
	}
	return "?"
}

// BuildSynthesisPrompt renders the fixed-format prompt describing a freshly
// collapsed window and its full constant list.
func BuildSynthesisPrompt(window *models.Window, mergeHash string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== WINDOW: %s ===\n", window.Name)
	fmt.Fprintf(&b, "%s @ %s\n", window.GitBranch, mergeHash)
	fmt.Fprintf(&b, "constants: %d\n", len(window.Constants))

	for _, c := range window.Constants {
		fmt.Fprintf(&b, "- %s (%s)\n", c.GitTag, c.SourceName)
		fmt.Fprintf(&b, "  %q\n", c.Summary)
		if len(c.GateSnapshot) > 0 {
			var gates strings.Builder
			for _, g := range c.GateSnapshot {
				gates.WriteString(g.Letter)
				gates.WriteString(GateStateCode(g.State))
			}
			fmt.Fprintf(&b, "  gates %s depth %d\n", gates.String(), c.Depth)
		}
	}

	b.WriteString(PromptBanner)
	return b.String()
}
