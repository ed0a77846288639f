// Package access decides what a viewer may see of a lesson. Decisions are
// normal results, not errors: premium content teases with a blurred preview
// rather than hiding, while private content is denied outright.
package access

import (
	"fmt"

	"lifelessons/internal/entity"
)

type Decision string

const (
	AllowFull    Decision = "allow_full"
	AllowBlurred Decision = "allow_blurred"
	Deny         Decision = "deny"
)

// Evaluate is pure and total: any lesson value, any viewer. Unknown privacy
// or access-level values fail closed to Deny.
func Evaluate(lesson *entity.Lesson, viewer entity.ViewerContext) Decision {
	switch lesson.Privacy {
	case entity.PrivacyPublic, entity.PrivacyPrivate:
	default:
		return Deny
	}
	switch lesson.AccessLevel {
	case entity.AccessFree, entity.AccessPremium:
	default:
		return Deny
	}

	if lesson.Privacy == entity.PrivacyPrivate && !lesson.IsOwnedBy(viewer.Email) && !viewer.IsAdmin() {
		return Deny
	}

	if lesson.AccessLevel == entity.AccessPremium && !viewer.IsPremium && !lesson.IsOwnedBy(viewer.Email) && !viewer.IsAdmin() {
		return AllowBlurred
	}

	return AllowFull
}

// NormalizeAccessLevel accepts only the canonical casing. The UI historically
// compared "Free" both case-sensitively and not; the server settles it by
// rejecting anything but the exact enum values.
func NormalizeAccessLevel(raw string) (entity.AccessLevel, error) {
	switch entity.AccessLevel(raw) {
	case entity.AccessFree:
		return entity.AccessFree, nil
	case entity.AccessPremium:
		return entity.AccessPremium, nil
	default:
		return "", fmt.Errorf("%w: invalid access level %q", entity.ErrValidation, raw)
	}
}

func NormalizePrivacy(raw string) (entity.Privacy, error) {
	switch entity.Privacy(raw) {
	case entity.PrivacyPublic:
		return entity.PrivacyPublic, nil
	case entity.PrivacyPrivate:
		return entity.PrivacyPrivate, nil
	default:
		return "", fmt.Errorf("%w: invalid privacy %q", entity.ErrValidation, raw)
	}
}
