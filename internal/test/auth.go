package test

import (
	"errors"
	"strconv"
	"strings"

	pkgAuth "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/pkg/auth"
)

// HasherStub hashes by prefixing, making assertions deterministic.
type HasherStub struct {
	Err error
}

func (h *HasherStub) Hash(password string) (string, error) {
	if h.Err != nil {
		return "", h.Err
	}
	return "hashed:" + password, nil
}

func (h *HasherStub) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// StrategyStub encodes claims into a plain "uid:role" token.
type StrategyStub struct {
	IssueErr error
	ParseErr error
}

func (s *StrategyStub) IssueToken(claims pkgAuth.Claims) (string, error) {
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	return strconv.FormatInt(claims.UserID, 10) + ":" + claims.Role, nil
}

func (s *StrategyStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseErr != nil {
		return nil, s.ParseErr
	}
	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return nil, pkgAuth.ErrInvalidToken
	}
	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, pkgAuth.ErrInvalidToken
	}
	return &pkgAuth.Claims{UserID: userID, Role: parts[1]}, nil
}

func (s *StrategyStub) Name() string { return "stub" }

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Role    string
	Err     error
	ParseFn func(string) (*pkgAuth.Claims, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &pkgAuth.Claims{UserID: s.ID, Role: s.Role}, nil
}

var (
	_ pkgAuth.PasswordHasher = (*HasherStub)(nil)
	_ pkgAuth.Strategy       = (*StrategyStub)(nil)
)
