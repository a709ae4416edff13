package auth

import "time"

// Claims is the identity carried inside an auth token.
type Claims struct {
	UserID int64
	Role   string
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
