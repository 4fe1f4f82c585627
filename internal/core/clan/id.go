// Package clan contains the pure business logic for clan operations.
// This is part of the Functional Core - no I/O, only pure functions.
package clan

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
	multiHyphen  = regexp.MustCompile(`-+`)
)

// Slug converts a display name to its id form: lowercase, whitespace runs
// become single hyphens, everything outside [a-z0-9-] is dropped.
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateClanID derives a clan id from the creation ordinal and the display
// name. The ordinal is the clan count at creation time, which guarantees
// uniqueness within a project without a global counter.
func GenerateClanID(ordinal int, name string) string {
	return fmt.Sprintf("clan-%d-%s", ordinal, Slug(name))
}

// BranchName returns the branch a clan lives on.
func BranchName(clanID string) string {
	return "clan/" + clanID
}

// ConstantID derives the id of the constant produced by freezing a clan.
func ConstantID(clanID string) string {
	return "const-" + clanID
}

// ConstantTag returns the permanent tag addressing a clan's frozen snapshot.
func ConstantTag(clanID string) string {
	return "const/" + clanID
}

// WindowBranch derives the branch name for a new window.
func WindowBranch(windowName string) string {
	return "window/" + Slug(windowName)
}
