package validator

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// MaxFileSize validates that size (in bytes) does not exceed max.
func MaxFileSize(field string, size, max int64) Rule {
	return rule(field, "file_size", fmt.Sprintf("must be %d bytes or smaller", max), func() bool {
		return size <= max
	})
}

// AllowedFileType passes when either the content type contains one of the
// allowed tokens or the file name ends with one of them.
// Tokens are matched case-insensitively, e.g. "pdf", ".docx", "msword".
func AllowedFileType(field, filename, contentType string, allowed []string) Rule {
	ct := strings.ToLower(contentType)
	ext := strings.ToLower(filepath.Ext(filename))
	return rule(field, "file_type", "has an unsupported file type", func() bool {
		return slices.ContainsFunc(allowed, func(token string) bool {
			token = strings.TrimPrefix(strings.ToLower(token), ".")
			if ct != "" && strings.Contains(ct, token) {
				return true
			}
			return ext == "."+token
		})
	})
}
