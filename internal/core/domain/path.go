package domain

import "strings"

// RootFolderID is the Drive alias for the user's "My Drive" root.
const RootFolderID = "root"

// NormalizeName canonicalises a folder display name for comparison:
// all Unicode whitespace (including non-breaking spaces) is collapsed to
// single spaces, the result is trimmed and lowercased. "1415  Meridian",
// "1415 Meridian " and "1415 Meridian" all normalize to the same key.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// SplitFolderPath splits a slash-delimited folder path into its segments.
// Backslashes are accepted as separators, blank segments are dropped, and a
// leading "My Drive" component is stripped since resolution is always
// anchored at the root.
func SplitFolderPath(path string) []string {
	raw := strings.Split(strings.ReplaceAll(path, "\\", "/"), "/")
	segments := make([]string, 0, len(raw))
	for _, seg := range raw {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) > 0 {
		switch NormalizeName(segments[0]) {
		case "my drive", "mydrive":
			segments = segments[1:]
		}
	}
	return segments
}

// LooksLikeDriveID reports whether the argument is plausibly a Drive
// identifier rather than a folder path: long, no separators, no extension.
func LooksLikeDriveID(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return false
	}
	return len(s) >= 20 && !strings.Contains(s, ".")
}
