package util

import "strings"

// FileExtension returns the extension after the last dot, without the dot.
// Files without an extension return "".
func FileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}

// FileNameWithoutExtension strips the extension and any directory prefix.
func FileNameWithoutExtension(name string) string {
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}
