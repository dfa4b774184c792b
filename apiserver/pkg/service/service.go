/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package service

import (
	"context"
	"net/url"

	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/common/pkg/s3"
)

// Service orchestrates the job and run use cases over the repository and the
// object-store gateways. It holds no state of its own.
type Service struct {
	db    dbclient.Interface
	store s3.Interface
}

func NewService(db dbclient.Interface, store s3.Interface) *Service {
	return &Service{db: db, store: store}
}

// loadJob retrieves Job for internal use.
func (s *Service) loadJob(ctx context.Context, id int64) (*commonjob.Job, error) {
	record, err := s.db.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	return record.ToDomain(), nil
}

// loadRun retrieves Run for internal use.
func (s *Service) loadRun(ctx context.Context, id int64) (*commonjob.Run, error) {
	record, err := s.db.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	return record.ToDomain(), nil
}

// stripQuery removes the query and fragment from a URL, turning a presigned
// address into its permanent form.
func stripQuery(rawUrl string) string {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return rawUrl
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
