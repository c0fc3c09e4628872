package lisp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "L> ", cfg.Prompt)
	assert.True(t, cfg.EchoInput)
	assert.False(t, cfg.Trace)
	assert.Equal(t, 0, cfg.MaxDepth)
	assert.Empty(t, cfg.HistoryFile)
	assert.NoError(t, cfg.Validate())
}

func TestParseConfig(t *testing.T) {
	testCases := []struct {
		In  string
		Out Config
	}{
		{
			In:  ``,
			Out: DefaultConfig(),
		},
		{
			In:  `prompt: "> "`,
			Out: Config{Prompt: "> ", EchoInput: true},
		},
		{
			In: "prompt: \"lisp> \"\nhistory_file: /tmp/lisp.history\necho_input: false\ntrace: true\nmax_depth: 100\n",
			Out: Config{
				Prompt:      "lisp> ",
				HistoryFile: "/tmp/lisp.history",
				EchoInput:   false,
				Trace:       true,
				MaxDepth:    100,
			},
		},
	}

	for i := range testCases {
		cfg, err := ParseConfig([]byte(testCases[i].In))
		require.NoError(t, err, "input %q", testCases[i].In)
		assert.Equal(t, testCases[i].Out, cfg, "input %q", testCases[i].In)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, in := range []string{
		`colour: red`,
		`max_depth: -1`,
		`max_depth: deep`,
		`prompt: [`,
	} {
		_, err := ParseConfig([]byte(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lisp.yml")
	require.NoError(t, os.WriteFile(path, []byte("trace: true\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
	assert.Equal(t, "L> ", cfg.Prompt)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = LoadConfig("")
	assert.Error(t, err)
}
