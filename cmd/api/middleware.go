package main

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/auth"
)

func (app *application) AuthTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.BearerToken(r.Header.Get("Authorization"))
		if token == "" {
			app.unauthorizedErrorResponse(w, r, auth.ErrMissingToken)
			return
		}

		session, err := app.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		ctx := auth.WithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(clientIP(r)); !allow {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				app.rateLimitExceededResponse(w, r, strconv.Itoa(seconds))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port that RemoteAddr keeps when RealIP found no proxy header.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func getSession(r *http.Request) auth.Session {
	session, _ := auth.SessionFromContext(r.Context())
	return session
}
