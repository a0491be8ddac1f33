// Package auth is the session gate for the admin dashboard. There is one
// shared admin credential, so a session carries no user identity, just an
// authenticated flag plus a random token minted at login. The token ties
// log lines to a login and changes every time someone signs in, so a
// captured cookie value from an old session is recognizably stale.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	// SessionName is the admin session cookie name.
	SessionName = "harvale-admin"

	// SessionTTL is how long a login stays valid.
	SessionTTL = 24 * time.Hour

	isAdminKey = "is_admin"
	tokenKey   = "token"
)

// Store is initialised once via InitSessionStore.
var Store *sessions.CookieStore

// AdminSession is what LoadSession injects into r.Context() for a
// signed-in admin.
type AdminSession struct {
	Token string
}

type ctxKey string

const adminSessionKey ctxKey = "adminSession"

// Current returns the admin session and a "signed in?" flag.
func Current(r *http.Request) (*AdminSession, bool) {
	s, ok := r.Context().Value(adminSessionKey).(*AdminSession)
	return s, ok
}

// InitSessionStore initializes the global session Store using the provided
// session key and domain. The `secure` flag controls whether cookies are
// marked Secure and which SameSite mode is used.
//
// In production (secure=true), cookies are Secure + SameSite=None.
// In local dev over http://localhost, use secure=false so cookies are
// accepted, with SameSite=Lax.
func InitSessionStore(sessionKey, domain string, secure bool, logger *zap.Logger) error {
	if sessionKey == "" {
		return fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts
	Store = store

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return nil
}

// SignIn marks the current browser as the admin and returns the token
// minted for this login.
func SignIn(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, _ := Store.Get(r, SessionName)
	token := uuid.NewString()
	sess.Values[isAdminKey] = true
	sess.Values[tokenKey] = token
	if err := sess.Save(r, w); err != nil {
		return "", err
	}
	return token, nil
}

// SignOut clears the admin session cookie.
func SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := Store.Get(r, SessionName)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// LoadSession injects the admin session into context if the browser is
// signed in. If the session store has not been initialized yet, it is a
// no-op.
func LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Store == nil {
			next.ServeHTTP(w, r)
			return
		}

		sess, _ := Store.Get(r, SessionName)
		isAdmin, _ := sess.Values[isAdminKey].(bool)
		token, _ := sess.Values[tokenKey].(string)
		if isAdmin && token != "" {
			ctx := context.WithValue(r.Context(), adminSessionKey, &AdminSession{Token: token})
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures there is an admin session in context (set by
// LoadSession). If not signed in:
//   - HTML: 303 redirect to /admin/login?return=...
//   - API:  401 Unauthorized with a JSON error body.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := Current(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		if wantsHTML(r) {
			ret := url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, "/admin/login?return="+ret, http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"Unauthorized"}`)
	})
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
