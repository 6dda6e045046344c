package prompt

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return NewConsole(strings.NewReader(input), out), out
}

func TestConsole_Input(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      string
		expectedError error
	}{
		{name: "line", input: "Spanish\n", expected: "Spanish"},
		{name: "windows line ending", input: "Spanish\r\n", expected: "Spanish"},
		{name: "spaces kept", input: "  a b  \n", expected: "  a b  "},
		{name: "empty line", input: "\n", expected: ""},
		{name: "last line without newline", input: "tail", expected: "tail"},
		{name: "end of input", input: "", expectedError: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)

			answer, err := c.Input("Name:")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, answer)
			}
			assert.Equal(t, "? Name: ", out.String())
		})
	}
}

func TestConsole_Select(t *testing.T) {
	options := []string{"CSV", "JSON"}

	tests := []struct {
		name          string
		input         string
		expected      int
		warnings      int
		expectedError error
	}{
		{name: "first", input: "1\n", expected: 0},
		{name: "second with spaces", input: " 2 \n", expected: 1},
		{name: "out of range then valid", input: "3\n0\n2\n", expected: 1, warnings: 2},
		{name: "not a number then valid", input: "json\n1\n", expected: 0, warnings: 1},
		{name: "end of input", input: "9\n", warnings: 1, expectedError: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)

			idx, err := c.Select("Select the file type:", options)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, idx)
			}

			s := out.String()
			assert.Contains(t, s, "? Select the file type:\n")
			assert.Contains(t, s, " 1) CSV\n")
			assert.Contains(t, s, " 2) JSON\n")
			assert.Equal(t, tt.warnings, strings.Count(s, "Please enter a number between 1 and 2."))
		})
	}
}

func TestConsole_Select_NoOptions(t *testing.T) {
	c, _ := newTestConsole("1\n")

	_, err := c.Select("Pick:", nil)
	assert.Error(t, err)
}

func TestConsole_Notices(t *testing.T) {
	c, out := newTestConsole("")

	c.Success("Deck %q created successfully! 🎉", "Spanish")
	c.Info("No decks available.")
	c.Warn("careful")
	c.Error("Error: %v", io.ErrUnexpectedEOF)
	c.Highlight("What is 2+2?")

	assert.Equal(t,
		"Deck \"Spanish\" created successfully! 🎉\n"+
			"No decks available.\n"+
			"! careful\n"+
			"Error: unexpected EOF\n"+
			"\nWhat is 2+2?\n",
		out.String())
}

func TestConsole_Table(t *testing.T) {
	c, out := newTestConsole("")

	c.Table(
		[]string{"Deck Name", "Created At"},
		[][]string{
			{"Spanish", "October 17th 2026, 6:18:00 am"},
			{"German", "October 18th 2026, 7:00:00 pm"},
		},
	)

	s := out.String()
	assert.Contains(t, s, "Deck Name")
	assert.Contains(t, s, "Created At")
	assert.Contains(t, s, "Spanish")
	assert.Contains(t, s, "October 18th 2026, 7:00:00 pm")
	assert.Less(t, strings.Index(s, "Spanish"), strings.Index(s, "German"))
}

func TestConsole_Banner(t *testing.T) {
	c, out := newTestConsole("")

	c.Banner("Quiz time")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Greater(t, len(lines), 3)
}

func TestConsole_SpinOffTerminal(t *testing.T) {
	c, out := newTestConsole("")

	stop := c.Spin("Importing deck...")
	c.Success("done")
	stop()
	stop()

	assert.Equal(t, "done\n", out.String())
}
