/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package job

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

const bearerPrefix = "Bearer "

// IdentityToken carries the caller identity decoded from the Offline-Token
// header. Raw preserves the header value for passthrough.
type IdentityToken struct {
	UserId     int64  `json:"user_id"`
	ScopesHash string `json:"scopes_hash"`
	Raw        string `json:"-"`
}

// ParseIdentityToken decodes a "Bearer <base64(json)>" header value.
func ParseIdentityToken(header string) (*IdentityToken, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, commonerrors.NewBadRequest("token must start with Bearer")
	}
	encoded := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		payload, err = base64.RawStdEncoding.DecodeString(encoded)
	}
	if err != nil {
		return nil, commonerrors.NewBadRequest("token is not valid base64")
	}
	token := &IdentityToken{}
	if err = json.Unmarshal(payload, token); err != nil {
		return nil, commonerrors.NewBadRequest("token payload is not valid JSON")
	}
	if token.UserId <= 0 {
		return nil, commonerrors.NewBadRequest("token is missing user_id")
	}
	if token.ScopesHash == "" {
		return nil, commonerrors.NewBadRequest("token is missing scopes_hash")
	}
	token.Raw = header
	return token, nil
}

// Encode renders the token back into its header form.
func (t *IdentityToken) Encode() string {
	payload, _ := json.Marshal(map[string]interface{}{
		"user_id":     t.UserId,
		"scopes_hash": t.ScopesHash,
	})
	return bearerPrefix + base64.StdEncoding.EncodeToString(payload)
}
