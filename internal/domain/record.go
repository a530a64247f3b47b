package domain

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeUF    Type = "UF"
	TypeDolar Type = "DOLAR"
)

// Indicator returns the mindicador series code for the record type.
func (t Type) Indicator() string {
	return strings.ToLower(string(t))
}

func ParseType(raw string) (Type, error) {
	switch Type(strings.ToUpper(strings.TrimSpace(raw))) {
	case TypeUF:
		return TypeUF, nil
	case TypeDolar:
		return TypeDolar, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIndicatorType, raw)
}

// Record is one stored daily value. ID is unique per (Tipo, Fecha), a later
// write with the same ID replaces the earlier one.
type Record struct {
	ID        string `json:"id"`
	Fecha     string `json:"fecha"`
	Tipo      Type   `json:"tipo"`
	Valor     string `json:"valor"`
	URLPDF    string `json:"url_pdf,omitempty"`
	Timestamp string `json:"timestamp"`
}

func RecordID(t Type, fecha string) string {
	return string(t) + "-" + fecha
}
