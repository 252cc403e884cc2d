package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// TimestampedName builds "<base>_<unix><ext>" from an uploaded filename,
// replacing characters that are unsafe on disk.
func TimestampedName(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	name := fmt.Sprintf("%s_%d%s", base, time.Now().Unix(), ext)
	return SanitizeFileName(name)
}

// SanitizeFileName keeps letters, digits, '-', '_' and '.'; everything else
// becomes '_'.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// FileNameWithoutExt strips the directory and extension from a path.
func FileNameWithoutExt(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx != -1 {
		base = base[:idx]
	}
	return base
}
