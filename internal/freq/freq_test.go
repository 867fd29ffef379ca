package freq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountWords(t *testing.T) {
	text := "The Crane flew over the crane-yard. Cranes are not cranes.\nTRACE it, trace_it, traces."
	counts, err := CountWords(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"crane": 2, "trace": 1}, counts)
}

func TestParseCounts(t *testing.T) {
	in := "# listing\ncrane 12\n\nTrace 3\ncrane 1\n"
	counts, err := ParseCounts(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"crane": 13, "trace": 3}, counts)
}

func TestParseCountsErrors(t *testing.T) {
	for _, in := range []string{
		"crane\n",
		"crane 1 2\n",
		"cranes 4\n",
		"crane x\n",
		"crane -1\n",
	} {
		_, err := ParseCounts(strings.NewReader(in))
		assert.Error(t, err, in)
	}

	_, err := ParseCounts(strings.NewReader("crane 1\n\nbad\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
