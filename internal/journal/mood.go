package journal

import (
	"regexp"
	"strings"
)

// Mood is one selectable mood label. Color is a 6-hex-digit value without
// the leading '#'; Icon is a symbolic identifier rendered by the UI layer.
type Mood struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CustomIcon is the fixed icon assigned to user-added moods.
const CustomIcon = "star"

// BuiltIns returns the 5 protected moods with their fixed colors and icons.
// The slice is fresh on every call; callers may mutate it.
func BuiltIns() []Mood {
	return []Mood{
		{Name: "Happy", Icon: "smile", Color: "f9e2af"},
		{Name: "Sad", Icon: "frown", Color: "89b4fa"},
		{Name: "Angry", Icon: "flame", Color: "f38ba8"},
		{Name: "Excited", Icon: "zap", Color: "fab387"},
		{Name: "Calm", Icon: "leaf", Color: "a6e3a1"},
	}
}

// IsBuiltIn reports whether name is one of the protected moods.
// Matching is exact: built-in protection is case-sensitive.
func IsBuiltIn(name string) bool {
	switch name {
	case "Happy", "Sad", "Angry", "Excited", "Calm":
		return true
	}
	return false
}

// reservedNames are placeholder names stripped on every registry load.
// They leaked into saved data during early development and keep coming
// back from old snapshots.
var reservedNames = map[string]bool{
	"gg":    true,
	"gg gg": true,
}

// IsReservedName reports whether name is a placeholder that must never
// appear in the registry.
func IsReservedName(name string) bool {
	return reservedNames[strings.TrimSpace(name)]
}

var hexColorRe = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// ValidColor reports whether s is a 6-hex-digit color, with or without a
// leading '#'.
func ValidColor(s string) bool {
	return hexColorRe.MatchString(strings.TrimPrefix(s, "#"))
}

// NormalizeColor strips a leading '#' and lowercases the hex digits.
func NormalizeColor(s string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
}
