// Package models holds the user service domain types.
package models

import "time"

// Account is a registered user. PasswordHash never leaves the service.
type Account struct {
	ID              int64
	Name            string
	Nickname        string
	PasswordHash    string
	About           string
	ProfileImageURL string
	MemberSince     time.Time
	FollowerCount   int64
	FollowingCount  int64
}

// Follow is a directed relation: FollowerID follows UserID.
type Follow struct {
	ID         int64
	UserID     int64
	FollowerID int64
	CreatedAt  time.Time
}

// AvatarUpload is a time-limited permission to PUT a profile image.
type AvatarUpload struct {
	Key       string
	UploadURL string
	ObjectURL string
	ExpiresAt time.Time
}
