// Package domain contains core concepts of the chat system.
// This file defines User entities and related invariants.
// No storage or presentation logic should be added here.
package domain

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserAway     UserStatus = "away"
	UserBusy     UserStatus = "busy"
)

type User struct {
	ID       string
	Name     string
	Email    string
	Status   UserStatus
	Settings map[string]string
}

// Setting returns the value stored for key and whether it was set.
func (u User) Setting(key string) (string, bool) {
	v, ok := u.Settings[key]
	return v, ok
}
