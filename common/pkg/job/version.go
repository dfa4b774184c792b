/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package job

import "regexp"

var semverPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ExtractClientVersion pulls the first version-looking token out of the
// given header values, typically the user agent followed by the client
// version header. Returns "unknown" when none of them carries one.
func ExtractClientVersion(values ...string) string {
	for _, v := range values {
		if match := semverPattern.FindString(v); match != "" {
			return match
		}
	}
	return "unknown"
}
