/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package s3

import (
	"archive/zip"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

type ContentKind string

const (
	KindZip    ContentKind = "zip"
	KindJson   ContentKind = "json"
	KindText   ContentKind = "text"
	KindBinary ContentKind = "binary"
)

const (
	entryPreviewSize = 2048
	hexPreviewSize   = 64
	sniffSize        = 512
)

var zipMagic = []byte("PK\x03\x04")

// ZipEntry describes one file inside an uploaded archive.
type ZipEntry struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Preview string `json:"preview,omitempty"`
}

// UploadContent is the parsed representation of one uploaded object.
type UploadContent struct {
	Key     string      `json:"key"`
	Kind    ContentKind `json:"kind"`
	Size    int         `json:"size"`
	Text    string      `json:"text,omitempty"`
	Json    interface{} `json:"json,omitempty"`
	Entries []ZipEntry  `json:"entries,omitempty"`
	Preview string      `json:"preview,omitempty"`
}

// DetectContent classifies an object by magic bytes and key suffix and
// extracts a readable representation. Unreadable archives and NUL-bearing
// payloads degrade to a hex preview of the leading bytes.
func DetectContent(key string, data []byte) *UploadContent {
	content := &UploadContent{Key: key, Size: len(data)}

	if bytes.HasPrefix(data, zipMagic) || strings.HasSuffix(key, ".zip") {
		entries, err := readZipEntries(data)
		if err == nil {
			content.Kind = KindZip
			content.Entries = entries
			return content
		}
		content.Kind = KindBinary
		content.Preview = hexPreview(data)
		return content
	}

	if looksLikeJson(key, data) {
		var parsed interface{}
		if err := json.Unmarshal(data, &parsed); err == nil {
			content.Kind = KindJson
			content.Json = parsed
			return content
		}
	}

	if isBinary(data) {
		content.Kind = KindBinary
		content.Preview = hexPreview(data)
		return content
	}

	content.Kind = KindText
	content.Text = decodeText(data)
	return content
}

func looksLikeJson(key string, data []byte) bool {
	if strings.HasSuffix(key, ".json") {
		return true
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func isBinary(data []byte) bool {
	sniff := data
	if len(sniff) > sniffSize {
		sniff = sniff[:sniffSize]
	}
	return bytes.IndexByte(sniff, 0) >= 0
}

func readZipEntries(data []byte) ([]ZipEntry, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	entries := make([]ZipEntry, 0, len(reader.File))
	for _, f := range reader.File {
		entry := ZipEntry{Name: f.Name, Size: int64(f.UncompressedSize64)}
		if hasTextSuffix(f.Name) && f.UncompressedSize64 > 0 {
			entry.Preview = entryPreview(f)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func hasTextSuffix(name string) bool {
	for _, suffix := range []string{".txt", ".json", ".fred", ".csv", ".log", ".md", ".yaml", ".yml"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func entryPreview(f *zip.File) string {
	rc, err := f.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	buf := make([]byte, entryPreviewSize)
	n, _ := io.ReadFull(rc, buf)
	return decodeText(buf[:n])
}

// decodeText decodes as UTF-8 when valid. Simulation inputs predate
// unicode, bytes in the 0x80-0x9f range mean windows-1252, anything else
// non-UTF-8 is treated as latin-1.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	cm := charmap.ISO8859_1
	for _, b := range data {
		if b >= 0x80 && b <= 0x9f {
			cm = charmap.Windows1252
			break
		}
	}
	decoded, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

func hexPreview(data []byte) string {
	if len(data) > hexPreviewSize {
		data = data[:hexPreviewSize]
	}
	return hex.EncodeToString(data)
}
