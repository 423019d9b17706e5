package middleware

import (
	"net/http"
	"partyinbangalore-backend/auth"
	c "partyinbangalore-backend/context"
	"partyinbangalore-backend/response"
	"strconv"
	"strings"
)

// Authenticate guards a subrouter with bearer-token auth. When roles are
// given the token must carry one of them; with none, any valid session
// passes.
func Authenticate(secret string, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.Unauthorized().Send(ctx, w)
				return
			}

			claims, err := auth.VerifyToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				response.Unauthorized().Send(ctx, w)
				return
			}

			if len(roles) > 0 && !contains(roles, claims.Role) {
				response.Unauthorized().Send(ctx, w)
				return
			}

			ctx = c.SetContextWithValue(ctx, c.ContextKeyUserID, strconv.FormatInt(claims.UserID, 10))
			ctx = c.SetContextWithValue(ctx, c.ContextKeyRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
