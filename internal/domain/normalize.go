package domain

import "strings"

// NormalizeKey returns the case-insensitive dedup key for a term name.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Slugify derives a URL-safe identifier from a term name: lowercase, every
// maximal run of non-[a-z0-9] characters collapsed to a single hyphen, and
// no leading or trailing hyphen. Applying Slugify to an already-correct slug
// returns it unchanged.
func Slugify(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))
	pendingHyphen := false
	for _, r := range lower {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
