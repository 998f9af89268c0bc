package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/mylist/cmd/mylist"
	"github.com/fwojciec/mylist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLLoader(t *testing.T) {
	t.Parallel()

	t.Run("accepts empty file", func(t *testing.T) {
		t.Parallel()

		r, err := main.YAMLLoader(strings.NewReader(""))

		require.NoError(t, err)
		assert.NotNil(t, r)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAMLLoader(strings.NewReader("locale: [es"))

		require.Error(t, err)
	})
}

func TestMain_RunWithConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("config supplies flag defaults", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		config := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(config, []byte("locale: es\ndrop_unidentified: true\n"), 0644))
		input := writeSnapshot(t, dir, "en", card("1", "Uno"))
		csvPath := filepath.Join(dir, "out.csv")

		m := &main.Main{
			ConfigPaths: []string{config},
			Opener:      &mock.Opener{OpenFn: func(string) error { return nil }},
		}
		err := m.Run(testContext(), []string{input, "--out", csvPath, "--viewer-out", filepath.Join(dir, "v.html")}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(readFile(t, csvPath), "\ufefftitulo,"))
	})

	t.Run("flags override config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		config := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(config, []byte("locale: es\n"), 0644))
		input := writeSnapshot(t, dir, "en", card("1", "Uno"))
		csvPath := filepath.Join(dir, "out.csv")

		m := &main.Main{
			ConfigPaths: []string{config},
			Opener:      &mock.Opener{OpenFn: func(string) error { return nil }},
		}
		err := m.Run(testContext(), []string{input, "--locale", "en", "--out", csvPath, "--viewer-out", filepath.Join(dir, "v.html")}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(readFile(t, csvPath), "title,id,url,seen\r\n"))
	})

	t.Run("missing config file is ignored", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeSnapshot(t, dir, "en", card("1", "Uno"))

		m := &main.Main{
			ConfigPaths: []string{filepath.Join(dir, "absent.yaml")},
			Opener:      &mock.Opener{OpenFn: func(string) error { return nil }},
		}
		err := m.Run(testContext(), []string{input, "--out", filepath.Join(dir, "out.csv"), "--viewer-out", filepath.Join(dir, "v.html")}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
	})

	t.Run("config flag loads file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		config := filepath.Join(dir, "custom.yaml")
		require.NoError(t, os.WriteFile(config, []byte("dedupe: true\n"), 0644))
		input := writeSnapshot(t, dir, "en", card("1", "Uno"), card("1", "Uno"))
		stdout := &bytes.Buffer{}

		err := newTestMain().Run(testContext(), []string{input, "--config", config, "--out", filepath.Join(dir, "out.csv"), "--viewer-out", filepath.Join(dir, "v.html")}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "[OK] Items: 1\n")
	})
}
