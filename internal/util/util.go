package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// SanitizeFileName drops any client-supplied directory part and replaces
// characters outside letters, digits, '.', '-' and '_' with '_'.
func SanitizeFileName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
			return r
		}

		return '_'
	}, name)

	if strings.Trim(sanitized, ".") == "" {
		return "file"
	}

	return sanitized
}

// UploadObjectName builds the stored name of an upload:
// <field>-<unix millis>-<suffix>-<sanitized original name>.
func UploadObjectName(field, originalName string, now time.Time, suffix int64) string {
	return SanitizeFileName(field) + "-" +
		strconv.FormatInt(now.UnixMilli(), 10) + "-" +
		strconv.FormatInt(suffix, 10) + "-" +
		SanitizeFileName(originalName)
}
