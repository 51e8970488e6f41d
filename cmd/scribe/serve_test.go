package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommand_Exists(t *testing.T) {
	// Verify serve command is registered
	cmd, _, err := rootCmd.Find([]string{"serve"})
	assert.NoError(t, err)
	assert.NotNil(t, cmd)
	assert.Equal(t, "serve", cmd.Name())
}

func TestServeCommand_Integration(t *testing.T) {
	dictDir := setupConfig(t, ":memory:")

	input := strings.Join([]string{
		`{"type":"check","payload":{"text":"hello"}}`,
		fmt.Sprintf(`{"type":"init","payload":{"backend":"wordlist","search_dirs":[%q],"custom_words":["fyne"]}}`, dictDir),
		`{"type":"check","payload":{"text":"Helo wrold, this is fyne."}}`,
		`{"type":"close","payload":{}}`,
	}, "\n") + "\n"

	responses := runServeInput(t, input)
	require.Len(t, responses, 4)

	assert.Equal(t, "ready", responses[0].Type)

	assert.False(t, responses[1].Success)
	assert.Equal(t, "spell checker not initialized", responses[1].Error)

	assert.True(t, responses[2].Success, responses[2].Error)
	assert.Equal(t, "init", responses[2].Type)

	require.True(t, responses[3].Success, responses[3].Error)
	var matches []serveMatch
	require.NoError(t, json.Unmarshal(responses[3].Data, &matches))
	require.Len(t, matches, 2)
	assert.Equal(t, "Helo", matches[0].Word)
	assert.Equal(t, 0, matches[0].Index)
	assert.Equal(t, "wrold", matches[1].Word)
	assert.Equal(t, 5, matches[1].Index)
	assert.Equal(t, 5, matches[1].Length)
}

func TestServeCommand_ConfigDefaultsAndNoIgnore(t *testing.T) {
	setupConfig(t, ":memory:")

	input := strings.Join([]string{
		`{"type":"init","payload":{"custom_words":[]}}`,
		`{"type":"check","payload":{"text":"see https://exmple.com and ` + "`wrold`" + `"}}`,
		`{"type":"close","payload":{}}`,
	}, "\n") + "\n"

	responses := runServeInput(t, input)
	require.Len(t, responses, 3)

	require.True(t, responses[1].Success, responses[1].Error)
	require.True(t, responses[2].Success, responses[2].Error)

	var matches []serveMatch
	require.NoError(t, json.Unmarshal(responses[2].Data, &matches))
	words := []string{}
	for _, m := range matches {
		words = append(words, m.Word)
	}
	assert.Equal(t, []string{"see", "https", "exmple", "com", "and", "wrold"}, words)
}

func TestServeCommand_IgnoreFlag(t *testing.T) {
	setupConfig(t, ":memory:")
	serveIgnore = true
	t.Cleanup(func() { serveIgnore = false })

	input := strings.Join([]string{
		`{"type":"init","payload":{"custom_words":["see","and"]}}`,
		`{"type":"check","payload":{"text":"see https://exmple.com and ` + "`wrold`" + `"}}`,
	}, "\n") + "\n"

	responses := runServeInput(t, input)
	require.Len(t, responses, 3)

	require.True(t, responses[2].Success, responses[2].Error)
	assert.JSONEq(t, `[]`, string(responses[2].Data))
}

type serveResponse struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type serveMatch struct {
	Word   string `json:"word"`
	Index  int    `json:"index"`
	Length int    `json:"length"`
}

// runServeInput feeds input to the serve command and decodes every
// response line.
func runServeInput(t *testing.T, input string) []serveResponse {
	t.Helper()

	out := &bytes.Buffer{}
	testCmd := &cobra.Command{
		Use:  "serve",
		RunE: runServe,
	}
	testCmd.SetIn(strings.NewReader(input))
	testCmd.SetOut(out)
	testCmd.SetErr(&bytes.Buffer{})
	testCmd.SetArgs([]string{})

	require.NoError(t, testCmd.Execute())

	var responses []serveResponse
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		var r serveResponse
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		responses = append(responses, r)
	}
	return responses
}
