/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package s3

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"gotest.tools/assert"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, body := range files {
		f, err := w.Create(name)
		assert.NilError(t, err)
		_, err = f.Write([]byte(body))
		assert.NilError(t, err)
	}
	assert.NilError(t, w.Close())
	return buf.Bytes()
}

func findEntry(t *testing.T, entries []ZipEntry, name string) ZipEntry {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entry %s not found", name)
	return ZipEntry{}
}

func TestDetectContentZip(t *testing.T) {
	data := buildZip(t, map[string]string{
		"main.fred":     "simulation { days = 30 }",
		"pop/data.bin":  "\x00\x01\x02",
		"notes/read.md": "synthetic population notes",
	})

	content := DetectContent("jobs/1/2026/01/02/030405/job_input.zip", data)
	assert.Equal(t, content.Kind, KindZip)
	assert.Equal(t, len(content.Entries), 3)

	fred := findEntry(t, content.Entries, "main.fred")
	assert.Equal(t, fred.Preview, "simulation { days = 30 }")
	assert.Equal(t, fred.Size, int64(len("simulation { days = 30 }")))

	// binary entries are listed but not previewed
	assert.Equal(t, findEntry(t, content.Entries, "pop/data.bin").Preview, "")
}

func TestDetectContentCorruptZip(t *testing.T) {
	content := DetectContent("job_input.zip", []byte("this is not an archive"))
	assert.Equal(t, content.Kind, KindBinary)
	assert.Assert(t, content.Preview != "")
}

func TestDetectContentJson(t *testing.T) {
	content := DetectContent("run_3_config.json", []byte(`{"params": {"seed": 42}}`))
	assert.Equal(t, content.Kind, KindJson)
	parsed, ok := content.Json.(map[string]interface{})
	assert.Assert(t, ok)
	assert.Assert(t, parsed["params"] != nil)
}

func TestDetectContentJsonByProbe(t *testing.T) {
	content := DetectContent("payload", []byte("  [1, 2, 3]"))
	assert.Equal(t, content.Kind, KindJson)
}

func TestDetectContentMalformedJsonFallsBackToText(t *testing.T) {
	content := DetectContent("broken.json", []byte("{not json at all"))
	assert.Equal(t, content.Kind, KindText)
	assert.Equal(t, content.Text, "{not json at all")
}

func TestDetectContentLatin1Text(t *testing.T) {
	content := DetectContent("notes.txt", []byte("caf\xe9 population"))
	assert.Equal(t, content.Kind, KindText)
	assert.Equal(t, content.Text, "café population")
}

func TestDetectContentWindows1252Text(t *testing.T) {
	content := DetectContent("notes.txt", []byte("\x93quoted\x94"))
	assert.Equal(t, content.Kind, KindText)
	assert.Equal(t, content.Text, "“quoted”")
}

func TestDetectContentBinary(t *testing.T) {
	data := []byte{0xde, 0xad, 0x00, 0xbe, 0xef}
	content := DetectContent("blob", data)
	assert.Equal(t, content.Kind, KindBinary)
	assert.Equal(t, content.Preview, "dead00beef")
	assert.Equal(t, content.Size, 5)
}

func TestDetectContentHexPreviewIsBounded(t *testing.T) {
	data := append([]byte{0x00}, bytes.Repeat([]byte{0xab}, 4096)...)
	content := DetectContent("blob", data)
	assert.Equal(t, content.Kind, KindBinary)
	assert.Equal(t, len(content.Preview), hexPreviewSize*2)
}

func TestEntryPreviewIsBounded(t *testing.T) {
	long := strings.Repeat("x", 10*entryPreviewSize)
	data := buildZip(t, map[string]string{"big.txt": long})

	content := DetectContent("input.zip", data)
	entry := findEntry(t, content.Entries, "big.txt")
	assert.Equal(t, len(entry.Preview), entryPreviewSize)
	assert.Equal(t, entry.Size, int64(len(long)))
}
