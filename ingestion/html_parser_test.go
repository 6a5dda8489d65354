package ingestion

import (
	"strings"
	"testing"

	"lotofacil/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<html><body><table>
<tr><th>Concurso</th><th>Data Sorteio</th><th>Bola1</th><th>Bola2</th></tr>
<tr><td>3001</td><td>02/02/2024</td>
<td>01</td><td>02</td><td>03</td><td>04</td><td>05</td><td>06</td><td>07</td><td>08</td>
<td>09</td><td>10</td><td>11</td><td>12</td><td>13</td><td>14</td><td>15</td>
<td>2</td><td>R$ 1.500.000,00</td></tr>
<tr><td>3000</td><td>01/02/2024</td>
<td>25</td><td>24</td><td>23</td><td>22</td><td>21</td><td>20</td><td>19</td><td>18</td>
<td>17</td><td>16</td><td>15</td><td>14</td><td>13</td><td>12</td><td>11</td></tr>
<tr><td>2999</td><td>31/01/2024</td><td>01</td><td>02</td></tr>
</table></body></html>`

func TestParseHTML_ResultTable(t *testing.T) {
	draws, err := ParseHTML(strings.NewReader(resultsPage))
	require.NoError(t, err)
	require.Len(t, draws, 2)

	assert.Equal(t, 3001, draws[0].ContestID)
	assert.Equal(t, "02/02/2024", draws[0].Date)
	assert.Equal(t, entities.Universe(15), draws[0].Numbers)

	assert.Equal(t, 3000, draws[1].ContestID)
	assert.Equal(t, entities.NewNumberSet(11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25), draws[1].Numbers)
}

func TestParseHTML_ContestIDIsNotABall(t *testing.T) {
	// contest 5 must not be read as one of the drawn numbers
	page := `<table><tr><td>5</td><td>20/10/2003</td>
<td>02</td><td>03</td><td>04</td><td>06</td><td>07</td><td>08</td><td>09</td><td>10</td>
<td>11</td><td>12</td><td>13</td><td>14</td><td>16</td><td>17</td><td>18</td></tr></table>`

	draws, err := ParseHTML(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, draws, 1)
	assert.Equal(t, 5, draws[0].ContestID)
	assert.False(t, draws[0].Numbers.Contains(5))
	assert.Len(t, draws[0].Numbers, entities.DrawSize)
}

func TestParseHTML_SingleCellRow(t *testing.T) {
	page := `<table><tr><td>Concurso 3002 (03/02/2024): 01-03-05-07-09-11-13-15-17-19-21-23-25-02-04</td></tr></table>`

	draws, err := ParseHTML(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, draws, 1)
	assert.Equal(t, 3002, draws[0].ContestID)
	assert.Equal(t, entities.NewNumberSet(1, 2, 3, 4, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25), draws[0].Numbers)
}

func TestParseHTML_DuplicateContestKeepsFirst(t *testing.T) {
	page := `<table>
<tr><td>10</td><td>01/01/2004</td><td>1 2 3 4 5 6 7 8 9 10 11 12 13 14 15</td></tr>
<tr><td>10</td><td>01/01/2004</td><td>11 12 13 14 15 16 17 18 19 20 21 22 23 24 25</td></tr>
</table>`

	draws, err := ParseHTML(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, draws, 1)
	assert.Equal(t, entities.Universe(15), draws[0].Numbers)
}

func TestParseHTML_NoResults(t *testing.T) {
	draws, err := ParseHTML(strings.NewReader(`<p>nothing here</p>`))
	require.NoError(t, err)
	assert.Empty(t, draws)
}
