package clan

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanFreeze evaluates whether a clan may be frozen.
// Rules:
// - The clan must currently be active; freezing is a one-way transition.
func CanFreeze(clanID, state string) GuardResult {
	if state != "active" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("clan %s is %s, only active clans can be frozen", clanID, state),
		}
	}
	return GuardResult{Allowed: true}
}

// CanWriteState evaluates whether a clan's worktree state file may be
// rewritten. A frozen clan's worktree content at the freezing commit is
// permanently tagged and must not be further mutated.
func CanWriteState(clanID, storedState string) GuardResult {
	if storedState == "frozen" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("clan %s is frozen, its state file is immutable", clanID),
		}
	}
	return GuardResult{Allowed: true}
}
