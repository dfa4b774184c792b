/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package s3

import (
	"fmt"
	"net/url"
	"strings"

	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

// ExtractKeyFromURL recovers the object key from any URL form this system
// stores or receives: s3://bucket/key, virtual-host style
// (bucket.s3.amazonaws.com and the regional variants), path-style addresses
// including custom endpoints, and the presigned flavor of each. Query and
// fragment never reach the key. Error messages carry only the URL path, the
// query can hold signature material.
func ExtractKeyFromURL(rawUrl string) (string, error) {
	if rawUrl == "" {
		return "", commonerrors.NewBadRequest("object url is empty")
	}
	u, err := url.Parse(rawUrl)
	if err != nil {
		return "", commonerrors.NewBadRequest("object url is not parseable")
	}

	path := strings.TrimPrefix(u.Path, "/")
	switch {
	case u.Scheme == "s3":
		// s3://bucket/key, the bucket rides in the host
		if u.Host == "" || path == "" {
			return "", commonerrors.NewBadRequest(fmt.Sprintf("no object key in s3 uri with path %q", u.Path))
		}
		return path, nil
	case strings.Contains(u.Host, ".s3"):
		// virtual-host style, the whole path is the key
		if path == "" {
			return "", commonerrors.NewBadRequest("no object key in virtual-host url")
		}
		return path, nil
	default:
		// path-style, the first segment is the bucket
		parts := strings.SplitN(path, "/", 2)
		if len(parts) < 2 || parts[1] == "" {
			return "", commonerrors.NewBadRequest(fmt.Sprintf("no object key in path %q", u.Path))
		}
		return parts[1], nil
	}
}
