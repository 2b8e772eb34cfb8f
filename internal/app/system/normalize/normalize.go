// Package normalize standardizes user-supplied identity fields before
// they are persisted or used in queries.
package normalize

import "strings"

// Email trims whitespace and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims whitespace. Case is preserved; display names keep the
// casing the user entered.
func Name(s string) string {
	return strings.TrimSpace(s)
}
