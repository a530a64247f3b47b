package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionTable(t *testing.T) {
	cases := map[string]string{
		"indicators":            "indicators_goose_version",
		"edarkstore-indicators": "edarkstore_indicators_goose_version",
		"Indicators.2024":       "indicators_2024_goose_version",
		`odd"name`:              "odd_name_goose_version",
	}
	for table, want := range cases {
		require.Equal(t, want, VersionTable(table), table)
	}
}
