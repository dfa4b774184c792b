/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package results

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"gotest.tools/assert"

	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	assert.NilError(t, os.MkdirAll(filepath.Dir(path), 0755))
	assert.NilError(t, os.WriteFile(path, []byte(body), 0644))
}

func entryNames(t *testing.T, data []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	assert.NilError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func readEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	assert.NilError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		assert.NilError(t, err)
		defer func() { _ = rc.Close() }()
		body, err := io.ReadAll(rc)
		assert.NilError(t, err)
		return string(body)
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

func TestPackageRunDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "RUN4")
	writeFile(t, filepath.Join(dir, "out.csv"), "day,infected\n0,10\n")

	packaged, err := Package(dir)
	assert.NilError(t, err)
	assert.Equal(t, packaged.DirectoryName, "RUN4")
	assert.Equal(t, packaged.FileCount, 1)
	assert.Equal(t, packaged.TotalBytes, int64(len("day,infected\n0,10\n")))
	assert.DeepEqual(t, entryNames(t, packaged.Bytes), []string{"RUN4/out.csv"})
	assert.Equal(t, readEntry(t, packaged.Bytes, "RUN4/out.csv"), "day,infected\n0,10\n")
}

func TestPackageRunDirectoryKeepsSubpaths(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "RUN1")
	writeFile(t, filepath.Join(dir, "DAILY", "counts.csv"), "1\n")
	writeFile(t, filepath.Join(dir, "summary.txt"), "done")

	packaged, err := Package(dir)
	assert.NilError(t, err)
	assert.Equal(t, packaged.FileCount, 2)
	assert.DeepEqual(t, entryNames(t, packaged.Bytes),
		[]string{"RUN1/DAILY/counts.csv", "RUN1/summary.txt"})
}

func TestPackageParentOfRunDirectories(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "OUT")
	writeFile(t, filepath.Join(parent, "RUN1", "out.csv"), "a")
	writeFile(t, filepath.Join(parent, "RUN2", "out.csv"), "b")
	writeFile(t, filepath.Join(parent, "meta.json"), "{}")

	packaged, err := Package(parent)
	assert.NilError(t, err)
	assert.Equal(t, packaged.DirectoryName, "OUT")
	assert.Equal(t, packaged.FileCount, 3)
	assert.DeepEqual(t, entryNames(t, packaged.Bytes),
		[]string{"RUN1/out.csv", "RUN2/out.csv", "meta.json"})
}

func TestPackageRejectsPlainDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scratch")
	writeFile(t, filepath.Join(dir, "notes.txt"), "nothing simulated here")

	_, err := Package(dir)
	assert.Assert(t, err != nil)
	assert.Equal(t, commonerrors.GetErrorCode(err), commonerrors.InvalidResultsDirectory)
}

func TestPackageRejectsMissingDirectory(t *testing.T) {
	_, err := Package(filepath.Join(t.TempDir(), "gone"))
	assert.Assert(t, err != nil)
	assert.Equal(t, commonerrors.GetErrorCode(err), commonerrors.InvalidResultsDirectory)
}

func TestPackageRejectsFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "RUN9")
	assert.NilError(t, os.WriteFile(path, []byte("file, not dir"), 0644))

	_, err := Package(path)
	assert.Assert(t, err != nil)
	assert.Equal(t, commonerrors.GetErrorCode(err), commonerrors.InvalidResultsDirectory)
}

func TestPackageEmptyRunDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "RUN2")
	assert.NilError(t, os.MkdirAll(dir, 0755))

	packaged, err := Package(dir)
	assert.NilError(t, err)
	assert.Equal(t, packaged.FileCount, 0)
	assert.Equal(t, packaged.TotalBytes, int64(0))
	assert.Equal(t, len(entryNames(t, packaged.Bytes)), 0)
}

func TestPackageUsesDeflate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "RUN3")
	writeFile(t, filepath.Join(dir, "out.csv"), "compressible compressible compressible")

	packaged, err := Package(dir)
	assert.NilError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(packaged.Bytes), int64(len(packaged.Bytes)))
	assert.NilError(t, err)
	assert.Equal(t, len(zr.File), 1)
	assert.Equal(t, zr.File[0].Method, uint16(zip.Deflate))
}
