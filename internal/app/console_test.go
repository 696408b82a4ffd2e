package app

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*console, *bytes.Buffer) {
	var out bytes.Buffer
	return newConsole(strings.NewReader(input), &out, 10), &out
}

func TestConsoleInputs(t *testing.T) {
	c, out := newTestConsole("\n  Jane  \nx\n-4\n12\n2.5\n-1\n1e3\n-5\n12.50\n")

	s, err := c.inputString("name: ")
	require.NoError(t, err)
	assert.Equal(t, "Jane", s)
	assert.Contains(t, out.String(), "Input cannot be empty.")

	n, err := c.inputInteger("n: ", false)
	require.NoError(t, err)
	assert.EqualValues(t, 12, n)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a positive integer."))

	n, err = c.inputInteger("n: ", true)
	require.NoError(t, err)
	assert.EqualValues(t, -1, n)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a positive integer."))
	assert.Equal(t, 1, strings.Count(out.String(), "Please enter a whole number."))

	d, err := c.inputAmount("R")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(1000)))

	d, err = c.inputAmount("R")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))

	_, err = c.inputString("name: ")
	assert.Equal(t, io.EOF, err)
}

func TestConsoleInputDate(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	c, out := newTestConsole("2026-02-30\n2026-03-09\n2026-03-10\n2020-01-01\n")

	d, err := c.inputDate("date: ", today)
	require.NoError(t, err)
	assert.Equal(t, today, d)
	assert.Contains(t, out.String(), "Invalid date format.")
	assert.Contains(t, out.String(), "earlier than today's date")

	d, err = c.inputDate("date: ", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), d)
}

func TestConsoleConfirm(t *testing.T) {
	c, out := newTestConsole("\n\nY\nnope\n")
	for _, want := range []struct{ def, got bool }{{true, true}, {false, false}, {false, true}, {true, false}} {
		got, err := c.confirm("sure?", want.def)
		require.NoError(t, err)
		assert.Equal(t, want.got, got)
	}
	assert.Contains(t, out.String(), "sure?\ny/n [y]: ")
	assert.Contains(t, out.String(), "sure?\ny/n [n]: ")

	_, err := c.confirm("sure?", true)
	assert.Equal(t, io.EOF, err)
}

func TestConsoleChoice(t *testing.T) {
	c, out := newTestConsole(" 2 \n")
	s, err := c.choice("1. One\n2. Two")
	require.NoError(t, err)
	assert.Equal(t, "2", s)
	assert.Equal(t, "1. One\n2. Two\n\nEnter your choice: ----------\n", out.String())
}
