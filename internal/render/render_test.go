package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbeisheim/hotseat-chess/internal/model"
)

func TestSVGDrawsSquaresAndPieces(t *testing.T) {
	board := model.NewBoard()
	var buf bytes.Buffer
	SVG(&buf, &board, []model.Square{{Row: 5, Col: 4}, {Row: 4, Col: 4}})

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Equal(t, 64+2, strings.Count(out, "<rect"))
	assert.Equal(t, 32, strings.Count(out, "<text"))
	assert.Equal(t, 1, strings.Count(out, `data-piece="bQ"`))
	assert.Equal(t, 8, strings.Count(out, `data-piece="wP"`))
	assert.Contains(t, out, "</svg>")
}

func TestTerminalWithoutColor(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	board := model.NewBoard()
	var buf bytes.Buffer
	require.NoError(t, Terminal(&buf, &board, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "8  r  n  b  q  k  b  n  r ", lines[0])
	assert.Equal(t, "2  P  P  P  P  P  P  P  P ", lines[6])
	assert.Equal(t, "5                         ", lines[3])
	assert.Equal(t, "   a  b  c  d  e  f  g  h", lines[8])
}
