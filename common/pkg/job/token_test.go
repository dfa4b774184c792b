/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package job

import (
	"testing"

	"gotest.tools/assert"
)

func TestParseIdentityToken(t *testing.T) {
	// base64 of {"user_id": 123, "scopes_hash": "abc123"}
	header := "Bearer eyJ1c2VyX2lkIjogMTIzLCAic2NvcGVzX2hhc2giOiAiYWJjMTIzIn0="
	token, err := ParseIdentityToken(header)
	assert.NilError(t, err)
	assert.Equal(t, token.UserId, int64(123))
	assert.Equal(t, token.ScopesHash, "abc123")
	assert.Equal(t, token.Raw, header)
}

func TestParseIdentityTokenRejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"empty", ""},
		{"no bearer prefix", "eyJ1c2VyX2lkIjogMTIzfQ=="},
		{"wrong scheme", "Basic eyJ1c2VyX2lkIjogMTIzfQ=="},
		{"bad base64", "Bearer !!!not-base64!!!"},
		{"not json", "Bearer bm90LWpzb24="},
		{"missing user_id", "Bearer eyJzY29wZXNfaGFzaCI6ICJhYmMifQ=="},
		{"missing scopes_hash", "Bearer eyJ1c2VyX2lkIjogMTIzfQ=="},
		{"non positive user_id", "Bearer eyJ1c2VyX2lkIjogMCwgInNjb3Blc19oYXNoIjogImFiYyJ9"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseIdentityToken(test.header)
			assert.Assert(t, err != nil)
		})
	}
}

func TestIdentityTokenRoundTrip(t *testing.T) {
	token := &IdentityToken{UserId: 77, ScopesHash: "deadbeef"}
	parsed, err := ParseIdentityToken(token.Encode())
	assert.NilError(t, err)
	assert.Equal(t, parsed.UserId, int64(77))
	assert.Equal(t, parsed.ScopesHash, "deadbeef")
}

func TestExtractClientVersion(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"from user agent", []string{"epx-client/2.4.1 python-requests"}, "2.4.1"},
		{"two part version", []string{"fredcli 1.2"}, "1.2"},
		{"falls back to second value", []string{"curl", "3.0.0"}, "3.0.0"},
		{"nothing matches", []string{"curl", "dev"}, "unknown"},
		{"no values", nil, "unknown"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, ExtractClientVersion(test.values...), test.want)
		})
	}
}
