/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package fredfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *RunConfig {
	return &RunConfig{Params: Params{
		StartDate: "2020-01-15",
		EndDate:   "2020-05-01",
		SynthPop:  SynthPop{Locations: []string{"Allegheny_County_PA"}},
		Seed:      123456789,
	}}
}

func TestLegacyDate(t *testing.T) {
	cases := []struct {
		iso  string
		want string
	}{
		{"2020-01-15", "2020-Jan-15"},
		{"2020-05-01", "2020-May-01"},
		{"2021-12-31", "2021-Dec-31"},
	}
	for _, tc := range cases {
		got, err := LegacyDate(tc.iso)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := LegacyDate("01/15/2020")
	assert.Error(t, err)
}

func TestRunNumber(t *testing.T) {
	cases := []struct {
		seed int64
		want int64
	}{
		{0, 1},
		{1, 2},
		{65535, 65536},
		{65536, 1},
		{123456789, 123456789%65536 + 1},
	}
	for _, tc := range cases {
		c := testConfig()
		c.Params.Seed = tc.seed
		assert.Equal(t, tc.want, c.RunNumber(), "seed %d", tc.seed)
	}
}

func TestHeader(t *testing.T) {
	header, err := testConfig().Header()
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(header, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "start_date = 2020-Jan-15", lines[0])
	assert.Equal(t, "end_date = 2020-May-01", lines[1])
	assert.Equal(t, "locations = Allegheny_County_PA", lines[2])
	assert.Equal(t, "# seed = 123456789", lines[3])
}

func TestPrepare(t *testing.T) {
	dir := t.TempDir()
	mainPath := filepath.Join(dir, MainFileName)
	require.NoError(t, os.WriteFile(mainPath, []byte("condition INF {\n}\n"), 0o644))

	prepared, err := Prepare(mainPath, testConfig(), 7)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run_7_main.fred"), prepared)

	data, err := os.ReadFile(prepared)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "start_date = 2020-Jan-15\n"))
	assert.Contains(t, content, "condition INF {")
	// original model file is untouched
	original, err := os.ReadFile(mainPath)
	require.NoError(t, err)
	assert.Equal(t, "condition INF {\n}\n", string(original))
}

func TestLoadRunConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run_7_config.json")
	doc := `{"params":{"start_date":"2020-01-15","end_date":"2020-05-01",` +
		`"synth_pop":{"locations":["Allegheny_County_PA","Jefferson_County_PA"]},"seed":42},` +
		`"client":{"version":"11.1.1"}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	config, err := LoadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), config.Params.Seed)
	assert.Len(t, config.Params.SynthPop.Locations, 2)

	t.Run("missing dates are rejected", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"params":{"seed":1}}`), 0o644))
		_, err := LoadRunConfig(bad)
		assert.Error(t, err)
	})
}
