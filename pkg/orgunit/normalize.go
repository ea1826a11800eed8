// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgunit

import (
	"html"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

var (
	codePattern = regexp.MustCompile(`^[A-Z0-9_-]{1,32}$`)
	namePolicy  = bluemonday.StrictPolicy()
)

// NormalizeCode upper-cases a unit code and checks it against the allowed alphabet.
func NormalizeCode(input string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	if !codePattern.MatchString(code) {
		return "", ErrInvalidCode
	}
	return code, nil
}

// NormalizeName strips any markup from a display name.
func NormalizeName(input string) (string, error) {
	name := strings.TrimSpace(html.UnescapeString(namePolicy.Sanitize(input)))
	if name == "" {
		return "", ErrInvalidName
	}
	return name, nil
}

// NormalizeID returns the lower-case form stored for a uuid unit id, any other input is
// only trimmed and will not match a unit.
func NormalizeID(input string) string {
	input = strings.TrimSpace(input)
	if id, err := uuid.Parse(input); err == nil {
		return id.String()
	}
	return input
}

func normalizeParentID(parentID *string) *string {
	if parentID == nil {
		return nil
	}
	id := NormalizeID(*parentID)
	return &id
}
