/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/epiforge/fredcp/apiserver/pkg/archiver"
	"github.com/epiforge/fredcp/apiserver/pkg/handlers"
	"github.com/epiforge/fredcp/apiserver/pkg/service"
	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	commonklog "github.com/epiforge/fredcp/common/pkg/klog"
	"github.com/epiforge/fredcp/common/pkg/notification"
	"github.com/epiforge/fredcp/common/pkg/options"
	"github.com/epiforge/fredcp/common/pkg/s3"
	"github.com/epiforge/fredcp/common/pkg/trace"
)

type Server struct {
	opts       *options.Options
	httpServer *http.Server
	archiver   *archiver.Archiver
	ctx        context.Context
	cancel     context.CancelFunc
	isInited   bool
}

// NewServer creates and returns a new Server instance.
func NewServer() (*Server, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	s := &Server{
		opts:   &options.Options{},
		ctx:    ctx,
		cancel: cancel,
	}
	if err := s.init(); err != nil {
		cancel()
		return nil, err
	}
	return s, nil
}

// init performs the initial setup of the server including flag parsing,
// logging initialization, configuration loading and the optional background
// components, then marks the server as initialized.
func (s *Server) init() error {
	gin.SetMode(gin.ReleaseMode)
	var err error
	if err = s.opts.InitFlags(); err != nil {
		klog.ErrorS(err, "failed to parse flags")
		return err
	}
	if err = s.initLogs(); err != nil {
		klog.ErrorS(err, "failed to init logs")
		return err
	}
	if err = s.initConfig(); err != nil {
		klog.ErrorS(err, "failed to init config")
		return err
	}
	if commonconfig.IsTracingEnable() {
		if err = trace.InitTracer("fred-apiserver"); err != nil {
			klog.Warningf("Failed to init tracer: %v", err)
		}
	} else {
		klog.Info("Tracing is disabled (tracing.enable: false)")
	}
	if conf := commonconfig.GetNotificationConfig(); conf != "" {
		if err = notification.InitNotificationManager(s.ctx, conf); err != nil {
			klog.ErrorS(err, "failed to init notification manager")
			return err
		}
	}
	s.isInited = true
	return nil
}

// Start begins the server operation by starting the HTTP server and the
// archiver. It waits for a signal to stop and then calls Stop to shut down
// services.
func (s *Server) Start() {
	if !s.isInited {
		klog.Errorf("please init api-server first")
		return
	}
	gin.EnableJsonDecoderDisallowUnknownFields()

	klog.Infof("starting api-server")
	go func() {
		if err := s.startHttpServer(); err != nil && err != http.ErrServerClosed {
			klog.ErrorS(err, "failed to start http-server")
			os.Exit(-1)
		}
	}()

	if err := s.startArchiver(); err != nil {
		klog.ErrorS(err, "failed to start archiver")
		os.Exit(-1)
	}

	<-s.ctx.Done()
	s.Stop()
}

// Stop gracefully shuts down the HTTP server and the archiver. It cancels
// the context, shuts down services, and flushes logs before exiting.
func (s *Server) Stop() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	klog.Info("shutting down http server...")
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			klog.ErrorS(err, "failed to shutdown httpserver")
		}
	}
	if s.archiver != nil {
		s.archiver.Stop()
	}
	if err := trace.CloseTracer(); err != nil {
		klog.ErrorS(err, "failed to close tracer")
	}
	s.cancel()
	klog.Info("apiserver is stopped")
	klog.Flush()
}

// initLogs initializes the logging system with the specified log file path
// and size.
func (s *Server) initLogs() error {
	return commonklog.Init(s.opts.LogfilePath, s.opts.LogFileSize)
}

// initConfig loads the server configuration from the specified config file
// path. With no config flag the environment alone configures the server.
func (s *Server) initConfig() error {
	if s.opts.Config == "" {
		return commonconfig.InitConfig("")
	}
	fullPath, err := filepath.Abs(s.opts.Config)
	if err != nil {
		return err
	}
	if err = commonconfig.InitConfig(fullPath); err != nil {
		return fmt.Errorf("config path: %s, err: %v", fullPath, err)
	}
	return nil
}

// startHttpServer initializes and starts the HTTP server.
// It sets up the HTTP handlers, configures the server address based on the
// configured port, and starts listening for HTTP requests.
func (s *Server) startHttpServer() error {
	if commonconfig.GetServerPort() <= 0 {
		return fmt.Errorf("the apiserver port is not defined")
	}
	handler, err := handlers.InitHttpHandlers(s.ctx)
	if err != nil {
		return err
	}
	addr := fmt.Sprintf(":%d", commonconfig.GetServerPort())
	s.httpServer = &http.Server{Addr: addr, Handler: handler}
	klog.Infof("http-server listen port: %d", commonconfig.GetServerPort())
	if err = s.httpServer.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

// startArchiver schedules the cold storage sweep when a schedule is
// configured. It builds its own service so the HTTP path and the sweep do
// not share clients.
func (s *Server) startArchiver() error {
	if commonconfig.GetArchiveSchedule() == "" {
		return nil
	}
	db := dbclient.NewClient()
	if db == nil {
		return fmt.Errorf("failed to create the database client")
	}
	store, err := s3.NewGateway(s.ctx)
	if err != nil {
		return err
	}
	s.archiver = archiver.New(service.NewService(db, store))
	return s.archiver.Start(s.ctx)
}
