/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package pipeline

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// unzip extracts archive into dir and returns the number of files written.
// Entries that would escape dir are rejected.
func unzip(archive, dir string) (int, error) {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	extracted := 0
	root := filepath.Clean(dir) + string(os.PathSeparator)
	for _, entry := range reader.File {
		target := filepath.Join(dir, entry.Name)
		if !strings.HasPrefix(filepath.Clean(target)+string(os.PathSeparator), root) &&
			filepath.Clean(target) != filepath.Clean(dir) {
			return extracted, fmt.Errorf("archive entry %q escapes the workspace", entry.Name)
		}
		if entry.FileInfo().IsDir() {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return extracted, err
			}
			continue
		}
		if err = extractFile(entry, target); err != nil {
			return extracted, err
		}
		extracted++
	}
	return extracted, nil
}

func extractFile(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, entry.Mode())
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
