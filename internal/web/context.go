package web

import (
	"context"

	"github.com/vbonduro/stashkeep/internal/domain"
	"github.com/vbonduro/stashkeep/internal/session"
)

type ctxKey int

const (
	sessionCtxKey ctxKey = iota
	profileCtxKey
)

// sessionInfo is the authenticated session bound to the request context by
// requireUser.
type sessionInfo struct {
	Token string
	Data  session.Data
}

func withSession(ctx context.Context, info *sessionInfo) context.Context {
	return context.WithValue(ctx, sessionCtxKey, info)
}

func sessionFrom(ctx context.Context) *sessionInfo {
	info, _ := ctx.Value(sessionCtxKey).(*sessionInfo)
	return info
}

// withProfile binds the resolved active profile; it is read-only for the
// remainder of the request.
func withProfile(ctx context.Context, profile *domain.Profile) context.Context {
	return context.WithValue(ctx, profileCtxKey, profile)
}

func profileFrom(ctx context.Context) *domain.Profile {
	profile, _ := ctx.Value(profileCtxKey).(*domain.Profile)
	return profile
}
