package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"grlla/internal/i18n"

	"github.com/golang-jwt/jwt/v5"
)

type langKey string

const langCtx langKey = "lang"

// LanguageMiddleware resolves the display language for the request:
// an explicit ?lang= wins, then the Accept-Language header, then the
// process-wide switch.
func (app *application) LanguageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := ""
		switch q := r.URL.Query().Get("lang"); q {
		case i18n.LangEN, i18n.LangAR:
			lang = q
		}
		if lang == "" {
			if accept := r.Header.Get("Accept-Language"); accept != "" {
				lang = app.bundle.Resolve(accept)
			}
		}
		if lang == "" {
			lang = app.lang.Current()
		}

		ctx := context.WithValue(r.Context(), langCtx, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getLangFromContext(r *http.Request) string {
	lang, ok := r.Context().Value(langCtx).(string)
	if !ok || lang == "" {
		return i18n.LangEN
	}
	return lang
}

func (app *application) BasicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// read the auth header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
				return
			}

			// parse it -> get the base64
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Basic" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			// decode it
			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				app.unauthorizedBasicErrorResponse(w, r, err)
				return
			}

			// check the credentials
			username := app.config.auth.basic.user
			pass := app.config.auth.basic.pass

			creds := strings.SplitN(string(decoded), ":", 2)
			if len(creds) != 2 || creds[0] != username || creds[1] != pass {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminTokenMiddleware guards operator-only routes (catalog reload) with the
// bearer token minted by POST /admin/token.
func (app *application) AdminTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.unauthorizedErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			app.unauthorizedErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
			return
		}

		token := parts[1]
		jwtToken, err := app.authenticator.ValidateToken(token)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		claims, _ := jwtToken.Claims.(jwt.MapClaims)
		if sub, _ := claims["sub"].(string); sub != adminSubject {
			app.unauthorizedErrorResponse(w, r, fmt.Errorf("unexpected token subject"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
