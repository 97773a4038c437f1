package campaign

import (
	"commission-tracker/internal/pkg/errs"
)

var (
	ErrInvalidPlatform = errs.Validation(errs.New("platform must be facebook or instagram"))
	ErrInvalidType     = errs.Validation(errs.New("invalid campaign type"))
	ErrInvalidStatus   = errs.Validation(errs.New("invalid campaign status"))
)

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
)

var platformPrefixes = map[Platform]string{
	PlatformFacebook:  "FB",
	PlatformInstagram: "IG",
}

func NewPlatform(s string) (Platform, error) {
	p := Platform(s)
	if _, ok := platformPrefixes[p]; !ok {
		return "", ErrInvalidPlatform
	}
	return p, nil
}

func (p Platform) String() string {
	return string(p)
}

// Prefix is the reference id prefix for campaigns on this platform.
func (p Platform) Prefix() (string, error) {
	prefix, ok := platformPrefixes[p]
	if !ok {
		return "", ErrInvalidPlatform
	}
	return prefix, nil
}

type Type string

const (
	TypePost  Type = "post"
	TypeStory Type = "story"
	TypeReel  Type = "reel"
	TypeLive  Type = "live"
)

func NewType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypePost, TypeStory, TypeReel, TypeLive:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}

type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusEnded  Status = "ended"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusActive, StatusPaused, StatusEnded:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo allows active<->paused and any non-terminal state to ended.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusActive:
		return next == StatusPaused || next == StatusEnded
	case StatusPaused:
		return next == StatusActive || next == StatusEnded
	default:
		return false
	}
}
