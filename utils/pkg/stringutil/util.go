/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package stringutil

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// Base64Encode encodes a string to base64 format.
func Base64Encode(inputString string) string {
	if inputString == "" {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(inputString))
}

// Base64Decode decodes a base64 encoded string, returns empty string if decode fails.
func Base64Decode(inputString string) string {
	if inputString == "" {
		return ""
	}
	decodedBytes, err := base64.StdEncoding.DecodeString(inputString)
	if err != nil {
		return ""
	}
	return string(decodedBytes)
}

// StrCaseEqual compares two strings case-insensitively.
func StrCaseEqual(str1, str2 string) bool {
	return strings.EqualFold(str1, str2)
}

// Truncate shortens s to at most max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}

// Split splits a string by the given separator and trims whitespace from each part.
func Split(str, sep string) []string {
	if len(str) == 0 {
		return nil
	}
	strList := strings.Split(str, sep)
	var result []string
	for _, s := range strList {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		result = append(result, s)
	}
	return result
}
