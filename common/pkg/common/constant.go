/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package common

const (
	JsonContentType = "application/json"

	// request headers
	HeaderOfflineToken  = "Offline-Token"
	HeaderClientVersion = "Fredcli-Version"
	HeaderUserAgent     = "User-Agent"
	HeaderContentType   = "Content-Type"
	HeaderRequestId     = "X-Request-Id"

	// gin context keys populated by the middleware
	UserId        = "userId"
	ScopesHash    = "scopesHash"
	IdentityToken = "identityToken"
	ClientVersion = "clientVersion"
	RequestId     = "requestId"

	// query and path parameters
	JobIdParam = "job_id"
	IdParam    = "id"
)
