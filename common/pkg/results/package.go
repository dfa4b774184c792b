/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package results

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

// runDirPrefix marks the directories the simulator writes per-run output
// into (RUN1, RUN2, ...).
const runDirPrefix = "RUN"

// PackagedResults is a zipped simulation output tree. Fields describe the
// archive at packaging time and are never updated afterwards.
type PackagedResults struct {
	Bytes         []byte
	FileCount     int
	TotalBytes    int64
	DirectoryName string
}

// Package zips the simulation output under resultsDir.
//
// When resultsDir itself is a RUN directory, its files are archived under a
// prefix equal to the directory's basename, so /out/RUN4/data.csv becomes the
// entry RUN4/data.csv. When resultsDir is a parent holding at least one RUN
// subdirectory, the whole tree is archived with paths relative to resultsDir.
// Anything else is rejected.
func Package(resultsDir string) (*PackagedResults, error) {
	info, err := os.Stat(resultsDir)
	if err != nil {
		return nil, commonerrors.NewInvalidResultsDirectory(
			fmt.Sprintf("results directory %s is not readable: %v", resultsDir, err))
	}
	if !info.IsDir() {
		return nil, commonerrors.NewInvalidResultsDirectory(
			fmt.Sprintf("results path %s is not a directory", resultsDir))
	}

	base := filepath.Base(filepath.Clean(resultsDir))
	switch {
	case IsRunDirName(base):
		return packageTree(resultsDir, base)
	case hasRunChild(resultsDir):
		return packageTree(resultsDir, "")
	default:
		return nil, commonerrors.NewInvalidResultsDirectory(fmt.Sprintf(
			"%s is neither a %s* directory nor a parent of one", resultsDir, runDirPrefix))
	}
}

// IsRunDirName reports whether name is a per-run output directory name.
func IsRunDirName(name string) bool {
	return strings.HasPrefix(name, runDirPrefix)
}

// hasRunChild retrieves RunChild for internal use.
func hasRunChild(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() && IsRunDirName(entry.Name()) {
			return true
		}
	}
	return false
}

// packageTree zips every regular file below root. Entry names are relative
// to root, prefixed with entryPrefix when it is non-empty.
func packageTree(root, entryPrefix string) (*PackagedResults, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	packaged := &PackagedResults{DirectoryName: filepath.Base(filepath.Clean(root))}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if entryPrefix != "" {
			name = entryPrefix + "/" + name
		}
		written, err := addEntry(zw, path, name)
		if err != nil {
			return err
		}
		packaged.FileCount++
		packaged.TotalBytes += written
		return nil
	})
	if err != nil {
		_ = zw.Close()
		return nil, commonerrors.NewInvalidResultsDirectory(
			fmt.Sprintf("failed to package %s: %v", root, err))
	}
	if err = zw.Close(); err != nil {
		return nil, commonerrors.NewInternalError(fmt.Sprintf("failed to finalize results archive: %v", err))
	}
	packaged.Bytes = buf.Bytes()
	return packaged, nil
}

// addEntry appends one file to the archive and returns its uncompressed size.
// zip.Writer.Create compresses with deflate.
func addEntry(zw *zip.Writer, path, name string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()
	w, err := zw.Create(name)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, f)
}
