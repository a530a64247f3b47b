package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustObservation(t *testing.T, fecha, valor string) Observation {
	t.Helper()
	o, err := NewObservation(fecha, valor)
	require.NoError(t, err)
	return o
}

func TestNewObservation_KeepsDateComponent(t *testing.T) {
	o, err := NewObservation("2024-05-01T04:00:00.000Z", "37000.50")
	require.NoError(t, err)
	require.Equal(t, "2024-05-01", o.Fecha)
	require.Equal(t, "37000.50", o.Valor)
	require.Equal(t, 2024, o.Date.Year())
}

func TestNewObservation_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		fecha string
		valor string
	}{
		{name: "short date", fecha: "2024-05", valor: "1"},
		{name: "not a date", fecha: "yesterday!", valor: "1"},
		{name: "empty value", fecha: "2024-05-01T00:00:00", valor: " "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewObservation(tc.fecha, tc.valor)
			require.ErrorIs(t, err, ErrInvalidObservation)
		})
	}
}

func TestSeries_On(t *testing.T) {
	s := Series{Observations: []Observation{
		mustObservation(t, "2024-05-02T00:00:00", "37010.10"),
		mustObservation(t, "2024-05-01T00:00:00", "37000.50"),
	}}

	o, ok := s.On("2024-05-01")
	require.True(t, ok)
	require.Equal(t, "37000.50", o.Valor)

	_, ok = s.On("2024-05-03")
	require.False(t, ok)
}

func TestSeries_Latest_PicksMaxDateNotPosition(t *testing.T) {
	s := Series{Observations: []Observation{
		mustObservation(t, "2024-04-30T00:00:00", "36990.00"),
		mustObservation(t, "2024-05-02T00:00:00", "37010.10"),
		mustObservation(t, "2024-05-01T00:00:00", "37000.50"),
	}}

	o, ok := s.Latest()
	require.True(t, ok)
	require.Equal(t, "2024-05-02", o.Fecha)
}

func TestSeries_Latest_Empty(t *testing.T) {
	s := Series{Indicator: "uf", Year: 2024}
	require.True(t, s.Empty())
	_, ok := s.Latest()
	require.False(t, ok)
}

func TestParseType(t *testing.T) {
	tp, err := ParseType(" uf ")
	require.NoError(t, err)
	require.Equal(t, TypeUF, tp)

	tp, err = ParseType("Dolar")
	require.NoError(t, err)
	require.Equal(t, TypeDolar, tp)
	require.Equal(t, "dolar", tp.Indicator())

	_, err = ParseType("euro")
	require.ErrorIs(t, err, ErrUnknownIndicatorType)
}

func TestRecordID(t *testing.T) {
	require.Equal(t, "UF-2024-05-01", RecordID(TypeUF, "2024-05-01"))
	require.Equal(t, "DOLAR-2024-05-01", RecordID(TypeDolar, "2024-05-01"))
}
