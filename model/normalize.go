package model

import "strings"

func NormalizeSearchTerm(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
