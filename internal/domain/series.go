package domain

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Observation struct {
	Fecha string    // YYYY-MM-DD
	Date  time.Time // Fecha parsed, UTC midnight
	Valor string    // decimal literal as published
}

// NewObservation builds an observation from the raw source datetime, keeping
// only its date component.
func NewObservation(rawFecha, valor string) (Observation, error) {
	if len(rawFecha) < len(DateLayout) {
		return Observation{}, ErrInvalidObservation
	}
	fecha := rawFecha[:len(DateLayout)]
	date, err := time.Parse(DateLayout, fecha)
	if err != nil {
		return Observation{}, ErrInvalidObservation
	}
	if strings.TrimSpace(valor) == "" {
		return Observation{}, ErrInvalidObservation
	}
	return Observation{Fecha: fecha, Date: date, Valor: valor}, nil
}

// Series holds the observations of one indicator for one year. It may be empty,
// callers have to check the bool returned by On and Latest.
type Series struct {
	Indicator    string
	Year         int
	Observations []Observation
}

func (s Series) Empty() bool { return len(s.Observations) == 0 }

// On returns the observation published for the given YYYY-MM-DD date.
func (s Series) On(fecha string) (Observation, bool) {
	for _, o := range s.Observations {
		if o.Fecha == fecha {
			return o, true
		}
	}
	return Observation{}, false
}

// Latest returns the observation with the greatest date, regardless of the
// order the source returned them in. The first one wins on equal dates.
func (s Series) Latest() (Observation, bool) {
	if s.Empty() {
		return Observation{}, false
	}
	latest := s.Observations[0]
	for _, o := range s.Observations[1:] {
		if o.Date.After(latest.Date) {
			latest = o
		}
	}
	return latest, true
}
