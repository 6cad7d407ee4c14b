// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import "strings"

// matchesJournal reports whether name case-insensitively contains any
// allow-list entry as a substring. Containment, not equality: sub-journal
// variants pass ("Nature Communications" passes an entry of "Nature"), and
// so does any venue that merely contains an entry ("Super Nature Journal").
func matchesJournal(name string, allowList []string) bool {
	lower := strings.ToLower(name)
	for _, entry := range allowList {
		if strings.Contains(lower, strings.ToLower(entry)) {
			return true
		}
	}
	return false
}
