package helper

import "strings"

// IsDuplicateKey: detecta violação de unicidade (Postgres SQLSTATE 23505;
// SQLite usa "UNIQUE constraint failed").
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
