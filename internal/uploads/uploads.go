// Package uploads decides where applicant documents are written on disk.
package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// FallbackName is used when nothing of the original filename survives sanitizing.
const FallbackName = "document"

var disallowed = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces a client-supplied filename to a flat ASCII name
// that is safe to join onto the upload directory. It returns "" when no
// usable characters remain.
func SecureFilename(name string) string {
	name = norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range name {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(b.String())
	name = strings.Join(strings.Fields(name), "_")
	name = disallowed.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// FieldName is the multipart field that carries the file for the loan type's
// requirement at position (1-based, in requirement ID order).
func FieldName(loanTypeID uint, position int) string {
	return fmt.Sprintf("kyc_%d_%d", loanTypeID, position)
}

// Destination returns the path an upload named original is stored at.
// Identical names map to the same path, so a later upload replaces an earlier one.
func Destination(dir, original string) string {
	name := SecureFilename(original)
	if name == "" {
		name = FallbackName
	}
	return filepath.Join(dir, name)
}

// EnsureDir creates the upload directory if it is missing.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
