package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLineKeepsFinalUnterminatedLine(t *testing.T) {
	p := newPrompter(strings.NewReader("  alice"), &bytes.Buffer{})

	line, err := p.readLine()
	require.NoError(t, err)
	require.Equal(t, "alice", line)
}

func TestPromptChoiceRetriesUntilValid(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPrompter(strings.NewReader("x\n7\n2\n"), out)

	choice, err := p.promptChoice("Pick:", "1", "2", "3")
	require.NoError(t, err)
	require.Equal(t, "2", choice)
	require.Contains(t, out.String(), "Invalid choice. Please choose again.")
}

func TestPromptChoiceDefaultOnEmptyInput(t *testing.T) {
	p := newPrompter(strings.NewReader("\n"), &bytes.Buffer{})

	choice, err := p.promptChoiceDefault("Priority:", "LOW", "HIGH", "LOW")
	require.NoError(t, err)
	require.Equal(t, "LOW", choice)
}

func TestPromptPasswordFallsBackToPlainRead(t *testing.T) {
	p := newPrompter(strings.NewReader("secretpw\n"), &bytes.Buffer{})

	password, err := p.promptPassword("Password:")
	require.NoError(t, err)
	require.Equal(t, "secretpw", password)
}

func TestConfirm(t *testing.T) {
	p := newPrompter(strings.NewReader("y\nn\n"), &bytes.Buffer{})

	ok, err := p.confirm("Sure?")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = p.confirm("Sure?")
	require.NoError(t, err)
	require.False(t, ok)
}
