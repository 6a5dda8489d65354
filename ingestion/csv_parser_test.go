package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lotofacil/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIDs   []int
		wantFirst entities.NumberSet
	}{
		{
			name: "semicolon separated with header",
			input: "Concurso;Data;B1;B2;B3;B4;B5;B6;B7;B8;B9;B10;B11;B12;B13;B14;B15\n" +
				"1;29/09/2003;18;20;25;23;10;11;24;14;6;2;13;9;5;16;3\n" +
				"2;06/10/2003;23;15;5;4;12;16;20;6;11;19;24;1;9;13;7\n",
			wantIDs:   []int{2, 1},
			wantFirst: entities.NewNumberSet(1, 4, 5, 6, 7, 9, 11, 12, 13, 15, 16, 19, 20, 23, 24),
		},
		{
			name:      "comma separated",
			input:     "100,01/01/2005,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15\n",
			wantIDs:   []int{100},
			wantFirst: entities.Universe(15),
		},
		{
			name:    "rows with too few numbers are skipped",
			input:   "100;01/01/2005;1;2;3\nnot;a;row\n",
			wantIDs: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draws, err := ParseCSV(strings.NewReader(tt.input))
			require.NoError(t, err)

			ids := make([]int, 0, len(draws))
			for _, draw := range draws {
				ids = append(ids, draw.ContestID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			if tt.wantFirst != nil {
				assert.Equal(t, tt.wantFirst, draws[0].Numbers)
			}
		})
	}
}

func TestParseFile_ChoosesFormatByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "results.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("7;01/01/2004;1;2;3;4;5;6;7;8;9;10;11;12;13;14;15\n"), 0o600))

	htmlPath := filepath.Join(dir, "results.htm")
	require.NoError(t, os.WriteFile(htmlPath, []byte(resultsPage), 0o600))

	fromCSV, err := ParseFile(csvPath)
	require.NoError(t, err)
	require.Len(t, fromCSV, 1)
	assert.Equal(t, 7, fromCSV[0].ContestID)

	fromHTML, err := ParseFile(htmlPath)
	require.NoError(t, err)
	assert.Len(t, fromHTML, 2)

	_, err = ParseFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
