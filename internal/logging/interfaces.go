// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Sync() error

	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits structured security events, see
// https://cheatsheetseries.owasp.org/cheatsheets/Logging_Vocabulary_Cheat_Sheet.html
type SecurityLoggerInterface interface {
	SystemStartup(...Option)
	SystemShutdown(...Option)
	AuthzFailure(string, string, ...Option)
	AuthzAdmin(string, string, ...Option)
	InviteIssued(string, string, ...Option)
	InviteRevoked(string, string, ...Option)
	InviteAccepted(string, string, ...Option)
	UserActivated(string, ...Option)
}
