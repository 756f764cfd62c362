package helper

import "time"

// DateOnly descarta o componente de hora (UTC). Todo o cálculo de
// prazo/atraso do sistema compara apenas datas de calendário.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween: dias inteiros de calendário entre a e b (b - a).
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// IsOverdue: empréstimo vencido quando dueDate < today (só data).
func IsOverdue(dueDate, today time.Time) bool {
	return DateOnly(dueDate).Before(DateOnly(today))
}

// DaysOverdue: dias de atraso; 0 quando ainda no prazo.
func DaysOverdue(dueDate, today time.Time) int {
	if !IsOverdue(dueDate, today) {
		return 0
	}
	return DaysBetween(dueDate, today)
}

// FormatDateBR formata dd/mm/aaaa para as telas.
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateBRPtr: idem, para datas opcionais.
func FormatDateBRPtr(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("02/01/2006")
}
