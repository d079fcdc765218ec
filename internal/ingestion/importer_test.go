package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords(t *testing.T) {
	input := `[
		{
			"title": "Heat",
			"poster": "http://img/heat.jpg",
			"year": 1995,
			"genres": ["Action", "Crime"],
			"cast": ["Al Pacino", "Robert De Niro"],
			"languages": ["English"],
			"rating": {"score": 8.3, "votes": 700000}
		},
		{"title": "Ronin", "year": 1998}
	]`

	records, err := DecodeRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Heat", records[0].Title)
	assert.Equal(t, 1995, records[0].Year)
	assert.Equal(t, []string{"Action", "Crime"}, records[0].Genres)
	assert.Equal(t, 8.3, records[0].Rating.Score)

	assert.Equal(t, "Ronin", records[1].Title)
	assert.Nil(t, records[1].Rating)
}

func TestDecodeRecords_Malformed(t *testing.T) {
	_, err := DecodeRecords(strings.NewReader(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestUniqueNames(t *testing.T) {
	got := uniqueNames([]string{" Action ", "Action", "", "Crime", "Crime "})
	assert.Equal(t, []string{"Action", "Crime"}, got)
}
