/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package channel

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/epiforge/fredcp/common/pkg/notification/model"
)

// EmailChannel delivers job-event mail over SMTP. It dials per send; the
// queue's poll interval keeps the connection rate low enough that a held
// connection buys nothing.
type EmailChannel struct {
	cfg *EmailConfig
}

// Name returns the name of the client factory.
func (e *EmailChannel) Name() string {
	return model.ChannelEmail
}

// Init validates and stores the SMTP settings. A misconfigured channel
// fails here, at startup, not on the first terminal job.
func (e *EmailChannel) Init(cfg Config) error {
	if cfg.Email == nil {
		return fmt.Errorf("email config not provided")
	}
	if cfg.Email.SMTPHost == "" || cfg.Email.SMTPPort == 0 {
		return fmt.Errorf("email config is missing the smtp host or port")
	}
	if cfg.Email.From == "" {
		return fmt.Errorf("email config is missing the from address")
	}
	e.cfg = cfg.Email
	return nil
}

// Send delivers one message. The message must carry an email payload with
// at least one recipient.
func (e *EmailChannel) Send(ctx context.Context, message *model.Message) error {
	if e.cfg == nil {
		return fmt.Errorf("email channel not initialized")
	}
	if message == nil || message.Email == nil {
		return fmt.Errorf("the message carries no email payload")
	}
	if len(message.Email.To) == 0 {
		return fmt.Errorf("the email names no recipients")
	}
	if err := e.dialer().DialAndSend(e.compose(message.Email)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (e *EmailChannel) compose(msg *model.EmailMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Title)
	m.SetBody("text/html", msg.Content)
	return m
}

func (e *EmailChannel) dialer() *gomail.Dialer {
	d := gomail.NewDialer(e.cfg.SMTPHost, e.cfg.SMTPPort, e.cfg.Username, e.cfg.Password)
	d.SSL = e.cfg.UseTLS // true = 465  SSL, false = 587 STARTTLS
	return d
}
