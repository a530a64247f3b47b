package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	out, err := NewRenderer().Render("Valor UF: 37000.50", "Fecha: 2024-05-02")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	require.True(t, bytes.Contains(out, []byte("%%EOF")))
}

func TestRenderer_RenderNonASCII(t *testing.T) {
	_, err := NewRenderer().Render("Dólar observado")
	require.NoError(t, err)
}

func TestRenderer_NoLines(t *testing.T) {
	_, err := NewRenderer().Render()
	require.ErrorIs(t, err, ErrNoLines)
}
