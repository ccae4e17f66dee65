package service

import (
	"strings"
	"unicode"
)

// Slugify normalizes a value for use inside a derived SKU: lowercase,
// runs of non-alphanumeric characters collapse to a single dash, leading
// and trailing dashes trimmed.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		} else {
			dash = true
		}
	}
	return b.String()
}

// DeriveSKU builds the unique variant SKU from the parent SKU, the owning
// dealer's login, and the variant's color and size.
func DeriveSKU(parentSKU, login, color, size string) string {
	return parentSKU + "-" + Slugify(login) + "-" + Slugify(color) + "-" + Slugify(size)
}

// DeriveTitle builds the variant title from the parent title and the
// owning dealer's login.
func DeriveTitle(parentTitle, login string) string {
	return parentTitle + " - " + login
}
