// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appID = "org-access-service"

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// Option decorates a single security event with extra fields.
type Option func(*[]zap.Field)

// WithRequest attaches the request path and the client address to the event.
func WithRequest(path, remoteAddr string) Option {
	return func(fields *[]zap.Field) {
		*fields = append(*fields, zap.String("path", path), zap.String("source_ip", remoteAddr))
	}
}

// WithContext attaches a free form description to the event.
func WithContext(description string) Option {
	return func(fields *[]zap.Field) {
		*fields = append(*fields, zap.String("description", description))
	}
}

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) log(level zapcore.Level, event string, opts ...Option) {
	fields := []zap.Field{
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", event),
		zap.String("datetime", time.Now().UTC().Format(time.RFC3339)),
	}

	for _, opt := range opts {
		opt(&fields)
	}

	if ce := s.l.Check(level, event); ce != nil {
		ce.Write(fields...)
	}
}

func (s *SecurityLogger) SystemStartup(opts ...Option) {
	s.log(zapcore.WarnLevel, "sys_startup", opts...)
}

func (s *SecurityLogger) SystemShutdown(opts ...Option) {
	s.log(zapcore.WarnLevel, "sys_shutdown", opts...)
}

func (s *SecurityLogger) AuthzFailure(subject, resource string, opts ...Option) {
	s.log(zapcore.ErrorLevel, "authz_fail:"+subject+","+resource, opts...)
}

func (s *SecurityLogger) AuthzAdmin(subject, resource string, opts ...Option) {
	s.log(zapcore.WarnLevel, "authz_admin:"+subject+","+resource, opts...)
}

func (s *SecurityLogger) InviteIssued(userID, tenantID string, opts ...Option) {
	s.log(zapcore.InfoLevel, "user_invited:"+userID+","+tenantID, opts...)
}

func (s *SecurityLogger) InviteRevoked(userID, tenantID string, opts ...Option) {
	s.log(zapcore.WarnLevel, "invite_revoked:"+userID+","+tenantID, opts...)
}

func (s *SecurityLogger) InviteAccepted(userID, tenantID string, opts ...Option) {
	s.log(zapcore.WarnLevel, "invite_accepted:"+userID+","+tenantID, opts...)
}

func (s *SecurityLogger) UserActivated(userID string, opts ...Option) {
	s.log(zapcore.WarnLevel, "user_updated:"+userID+",active", opts...)
}

// NewLogger creates a new default logger
// it will need to be closed with
// ```
// defer logger.Sync()
// ```
// to make sure all has been piped out before terminating
func NewLogger(level string) *Logger {
	var lvl string

	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		lvl = strings.ToLower(level)
	default:
		lvl = "error"
	}

	rawJSON := []byte(
		`{
			"level": "` + lvl + `",
			"encoding": "json",
			"outputPaths": ["stdout"],
			"errorOutputPaths": ["stdout","stderr"],
			"encoderConfig": {
				"messageKey": "message",
				"levelKey": "severity",
				"levelEncoder": "lowercase",
				"timeKey": "@timestamp",
				"timeEncoder": "rfc3339nano"
			}
		}`,
	)

	var cfg zap.Config
	if err := json.Unmarshal(rawJSON, &cfg); err != nil {
		panic(err)
	}

	logger := zap.Must(cfg.Build()).With(zap.String("app", appID))

	l := new(Logger)
	l.SugaredLogger = logger.Sugar()
	l.security = &SecurityLogger{l: logger.Named("security")}

	return l
}
