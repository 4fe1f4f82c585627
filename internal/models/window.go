package models

// RootWindowID is the id of the default window every project starts with.
const RootWindowID = "win-root"

// Window is a named, ever-growing checkpoint of accumulated constants.
// Windows are never mutated after creation; a project points its active
// window at the newest one. A child window's constant list is always a
// superset (as a sequence) of its parent's.
type Window struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	ParentWindow     string     `json:"parentWindow,omitempty"`
	Constants        []Constant `json:"constants"`
	GitBranch        string     `json:"gitBranch"`
	GitCommitAtBirth string     `json:"gitCommitAtBirth,omitempty"`
}

// RootWindow returns the default window a fresh project starts with.
func RootWindow() Window {
	return Window{
		ID:        RootWindowID,
		Name:      "root",
		Constants: []Constant{},
		GitBranch: "main",
	}
}
