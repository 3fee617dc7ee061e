package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"logview/internal/config"
)

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{name: "fits", input: "hello", width: 10, expected: "hello"},
		{name: "exact", input: "hello", width: 5, expected: "hello"},
		{name: "too long", input: "hello world", width: 6, expected: "hello…"},
		{name: "width one", input: "hello", width: 1, expected: "…"},
		{name: "zero width", input: "hello", width: 0, expected: ""},
		{name: "negative width", input: "hello", width: -3, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.width))
		})
	}
}

func Test_PadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{name: "pads", input: "ab", width: 4, expected: "ab  "},
		{name: "already wide", input: "abcd", width: 2, expected: "abcd"},
		{name: "empty", input: "", width: 3, expected: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PadRight(tt.input, tt.width))
		})
	}
}

func Test_TruncateAndPad(t *testing.T) {
	assert.Equal(t, "db.po…", TruncateAndPad("db.pool", 6))
	assert.Equal(t, "db    ", TruncateAndPad("db", 6))
}

func Test_SingleLine(t *testing.T) {
	assert.Equal(t, "a b c", SingleLine("a\nb\t c  "))
}

func Test_RenderLine(t *testing.T) {
	assert.Equal(t, 5, lipgloss.Width(RenderLine(5)))
	assert.Equal(t, 0, lipgloss.Width(RenderLine(-1)))
}

func Test_RenderHeader(t *testing.T) {
	result := RenderHeader(60, "logs", "page 1")

	assert.Contains(t, result, "logs")
	assert.Contains(t, result, "page 1")
}

func Test_RenderHeader_TruncatesLongTitle(t *testing.T) {
	title := strings.Repeat("x", 100)
	result := RenderHeader(40, title, "info")

	assert.NotContains(t, result, title)
	assert.Contains(t, result, "info")
}

func Test_RenderFooter(t *testing.T) {
	result := RenderFooter(60, "q quit", "a tip")

	assert.Contains(t, result, "v"+config.Version)
	assert.Contains(t, result, "q quit")
	assert.Contains(t, result, "a tip")
}

func Test_LevelColor(t *testing.T) {
	assert.Equal(t, LevelErrorColor, LevelColor("error"))
	assert.Equal(t, LevelDebugColor, LevelColor("debug"))
	assert.Equal(t, FgMuted, LevelColor("trace"))
}

func Test_LoggerColor(t *testing.T) {
	assert.Equal(t, LoggerColor(1), LoggerColor(1+len(LoggerColorPalette)))
	assert.Equal(t, LoggerColor(3), LoggerColor(-3))
}
