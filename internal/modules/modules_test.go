package modules

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstNumber(t *testing.T) {
	got, ok := FirstNumber("There are 123 apples")
	require.True(t, ok)
	assert.Equal(t, "123", got)

	_, ok = FirstNumber("no digits here")
	assert.False(t, ok)
}

func TestRegexOutput(t *testing.T) {
	var buf bytes.Buffer
	Regex(&buf)
	assert.Equal(t, "Found: 123\nall: [\"1\" \"22\" \"333\"]\n", buf.String())
}

func TestDateTime(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	now := time.Date(2024, time.March, 9, 9, 15, 42, 0, loc)

	assert.Equal(t, "14:30:00", SpecificTime(now).Format(ClockLayout))
	assert.Equal(t, "2024-03-09", Today(now).Format(DateLayout))

	var buf bytes.Buffer
	DateTime(&buf, now)
	assert.Equal(t, "now: 2024-03-09T09:15:42+02:00\n"+
		"today: 2024-03-09\n"+
		"specific time: 14:30:00\n"+
		"until 14:30: 5h14m0s\n", buf.String())
}

func TestEncode(t *testing.T) {
	j, y, err := Encode(Person{Name: "John", Age: 30, City: "New York"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"John","age":30,"city":"New York"}`, j)
	assert.Equal(t, "name: John\nage: 30\ncity: New York\n", y)
}

func TestCommonModules(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CommonModules(&buf))

	out := buf.String()
	assert.Contains(t, out, "math.Sqrt(16) = 4")
	assert.Contains(t, out, "uuid version: 4")
	head := out[:strings.Index(out, "math.Sqrt")]
	assert.Equal(t, len(Packages), strings.Count(head, "\n"))
}

func TestImports(t *testing.T) {
	var buf bytes.Buffer
	Imports(&buf)
	for _, f := range ImportForms {
		assert.Contains(t, buf.String(), f.Form)
	}
}
