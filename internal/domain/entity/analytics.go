package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// DeviceBucket is the fixed set of device classifications derived from a
// user-agent string.
type DeviceBucket string

const (
	DeviceBucketMobile  DeviceBucket = "mobile"
	DeviceBucketTablet  DeviceBucket = "tablet"
	DeviceBucketDesktop DeviceBucket = "desktop"
	DeviceBucketOther   DeviceBucket = "other"
	DeviceBucketUnknown DeviceBucket = "unknown"
)

// Ordered classification patterns. Tablet patterns must be checked before
// mobile would match them ("Android" appears in both), so the order here is
// deliberate: mobile-specific tokens first exclude tablets explicitly.
var (
	mobilePattern  = regexp.MustCompile(`(?i)(iphone|ipod|windows phone|blackberry|opera mini|mobile)`)
	tabletPattern  = regexp.MustCompile(`(?i)(ipad|tablet|kindle|silk|playbook)`)
	desktopPattern = regexp.MustCompile(`(?i)(windows nt|macintosh|x11|linux|cros)`)
)

// ClassifyDevice maps a raw device/user-agent string into a DeviceBucket.
// Empty input yields "unknown"; a non-empty string matching no pattern
// yields "other".
func ClassifyDevice(raw string) DeviceBucket {
	if raw == "" {
		return DeviceBucketUnknown
	}

	switch {
	case mobilePattern.MatchString(raw):
		return DeviceBucketMobile
	case tabletPattern.MatchString(raw):
		return DeviceBucketTablet
	case desktopPattern.MatchString(raw):
		return DeviceBucketDesktop
	default:
		return DeviceBucketOther
	}
}

// UserAnalytics is one recorded site visit. Rows are append-only and never
// mutated after creation.
type UserAnalytics struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id"` // Nullable: anonymous visits carry no user reference.
	Browser   string     `json:"browser"`
	Device    string     `json:"device"`
	CreatedAt time.Time  `json:"created_at"`
}

// Bucket classifies the visit's stored device string.
func (a *UserAnalytics) Bucket() DeviceBucket {
	return ClassifyDevice(a.Device)
}
