package dto

import (
	"bytes"
	"fmt"
	"time"
)

// DateLayout formato das datas sem hora trafegadas pela API.
const DateLayout = "2006-01-02"

// Date data de calendário em JSON ("2024-01-10"). Aceita também RFC 3339 na entrada.
type Date struct {
	time.Time
}

// NewDate trunca t para o dia (UTC).
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DatePtr converte um *time.Time opcional.
func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// MarshalJSON grava apenas a parte de data.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON lê "2006-01-02" ou RFC 3339.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	if s == "" {
		return nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		*d = Date{t}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("data inválida %q: use AAAA-MM-DD", s)
	}
	*d = NewDate(t)
	return nil
}

// ParseDate lê uma data de query string; vazio devolve nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q: use AAAA-MM-DD", s)
	}
	return &t, nil
}
