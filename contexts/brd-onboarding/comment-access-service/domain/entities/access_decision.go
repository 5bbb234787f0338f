package entities

import "time"

// AccessDecision is derived per request and never persisted or cached.
type AccessDecision struct {
	BRDID     string
	Role      Role
	Identity  string
	Allowed   bool
	Reason    string
	CheckedAt time.Time
}
