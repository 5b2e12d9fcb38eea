package cli

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/journeyviz/internal/cli/formatter"
	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/alexanderramin/journeyviz/internal/layout"
	"github.com/alexanderramin/journeyviz/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedRows(t *testing.T, s string) [][]rune {
	t.Helper()
	var rows [][]rune
	for _, line := range strings.Split(stripANSI(s), "\n") {
		rows = append(rows, []rune(line))
	}
	return rows
}

func cellMetrics() layout.Metrics {
	return layout.Metrics{HeaderHeight: 2, Padding: 1, CardWidth: 14, CardHeight: 3}
}

func TestCellBuffer_ClipsWrites(t *testing.T) {
	buf := newCellBuffer(3, 2)
	buf.set(-1, 0, 'x', "")
	buf.set(3, 1, 'x', "")
	buf.text(1, 1, "abc", "", false)

	assert.Equal(t, rune(0), buf.charAt(5, 5))
	assert.Equal(t, "   \n ab", stripANSI(buf.String()))
}

func TestRenderScene_Grid(t *testing.T) {
	sc := scene.New(scene.DefaultOptions())
	g := layout.NewGrid(90, 12, 3, cellMetrics())
	sc.DrawGrid(g, domain.DefaultStages())

	rows := renderedRows(t, renderScene(sc, 90, 12, nil))
	require.Len(t, rows, 12)
	for _, row := range rows {
		require.Len(t, row, 90)
	}

	assert.Equal(t, '│', rows[0][30])
	assert.Equal(t, '│', rows[11][60])
	assert.Equal(t, '┼', rows[2][30], "separators cross under the header")
	assert.Equal(t, '─', rows[2][0])
	assert.Contains(t, string(rows[1]), "Awareness")
	assert.Contains(t, string(rows[1]), "Consideration")
	assert.Equal(t, ' ', rows[5][0], "no separator before the first column")
}

func TestRenderScene_Card(t *testing.T) {
	sc := scene.New(scene.DefaultOptions())
	g := layout.NewGrid(90, 12, 3, cellMetrics())
	sc.DrawGrid(g, domain.DefaultStages())

	c := domain.NewCard("Email")
	c.X, c.Y = 8, 3
	n := sc.AddCard(c, 14, 3, time.Time{}, 0)

	rows := renderedRows(t, renderScene(sc, 90, 12, nil))
	assert.Equal(t, '╭', rows[3][8])
	assert.Equal(t, '╮', rows[3][21])
	assert.Equal(t, '╰', rows[5][8])
	assert.Equal(t, '×', rows[3][20])
	assert.Equal(t, "✉ Email", string(rows[4][10:17]))
	assert.Equal(t, '░', rows[6][15], "shadow under the card")

	n.SetHover(true)
	rows = renderedRows(t, renderScene(sc, 90, 12, nil))
	assert.Equal(t, '▒', rows[6][15], "hover deepens the shadow")
}

func TestRenderScene_TinyCardIsADot(t *testing.T) {
	sc := scene.New(scene.DefaultOptions())
	c := domain.NewCard("Web")
	c.X, c.Y = 8, 3
	sc.AddCard(c, 14, 3, time.Now(), time.Second)

	rows := renderedRows(t, renderScene(sc, 30, 10, nil))
	assert.Equal(t, '·', rows[4][15])
	assert.NotContains(t, stripANSI(renderScene(sc, 30, 10, nil)), "╭")
}

func TestDrawCard_CellsMatchHitTest(t *testing.T) {
	cases := []struct{ x, y float64 }{
		{3.5, 3},
		{10.5, 4.5},
		{8, 3},
		{21.25, 6.75},
	}
	for _, tc := range cases {
		sc := scene.New(scene.DefaultOptions())
		c := domain.NewCard("Web")
		c.X, c.Y = tc.x, tc.y
		n := sc.AddCard(c, 14, 3, time.Time{}, 0)

		buf := newCellBuffer(63, 20)
		drawCard(buf, n)

		for y := 0; y < 20; y++ {
			for x := 0; x < 63; x++ {
				hit, ok := sc.HitTest(float64(x)+0.5, float64(y)+0.5)
				drawn := buf.at(x, y).bg == formatter.ColorPanel
				assert.Equal(t, drawn, ok, "card at (%v, %v), cell (%d, %d)", tc.x, tc.y, x, y)
				if ok && hit.Part == scene.PartDelete && y == int(math.Ceil(tc.y-0.5)) {
					assert.Contains(t, []rune{'×', '─', '╮'}, buf.charAt(x, y))
				}
			}
		}

		// The drawn glyph itself is clickable.
		gx := int(math.Ceil(tc.x+14-0.5)) - 2
		gy := int(math.Ceil(tc.y - 0.5))
		require.Equal(t, '×', buf.charAt(gx, gy))
		hit, ok := sc.HitTest(float64(gx)+0.5, float64(gy)+0.5)
		require.True(t, ok)
		assert.Equal(t, scene.PartDelete, hit.Part)
	}
}

func TestCellOf(t *testing.T) {
	assert.Equal(t, 3, cellOf(3))
	assert.Equal(t, 3, cellOf(3.5))
	assert.Equal(t, 4, cellOf(3.6))
	assert.Equal(t, 17, cellOf(17.5))
	assert.Equal(t, 0, cellOf(0))
}

func TestRenderScene_Ghost(t *testing.T) {
	sc := scene.New(scene.DefaultOptions())
	rows := renderedRows(t, renderScene(sc, 30, 5, &ghost{label: "Phone", x: 15, y: 2}))
	assert.Contains(t, string(rows[2]), "[☎ Phone]")
}
