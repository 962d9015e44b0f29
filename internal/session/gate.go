package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GateConfig holds the request-facing settings of a Gate.
type GateConfig struct {
	// CookieName is read when the request has no bearer token.
	CookieName string
	// LoginURL is the redirect target for denied browser requests.
	LoginURL string
	// Timeout bounds one check. Zero means no extra deadline.
	Timeout time.Duration
}

// Gate runs one session check per request and lets the request through
// only when the check returns StatusAuthenticated.
type Gate struct {
	checker Checker
	cfg     GateConfig
	log     *slog.Logger
}

// NewGate builds a Gate around checker. A nil log discards output.
func NewGate(checker Checker, cfg GateConfig, log *slog.Logger) *Gate {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.LoginURL == "" {
		cfg.LoginURL = "/login"
	}
	return &Gate{checker: checker, cfg: cfg, log: log}
}

// Check extracts the access token from r and asks the checker about it,
// once, within the configured timeout.
func (g *Gate) Check(ctx context.Context, r *http.Request) Result {
	token := Token(r, g.cfg.CookieName)
	if token == "" {
		return Result{Status: StatusUnauthenticated}
	}
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}
	return g.checker.Check(ctx, token)
}

// Require gates browser routes: denied requests are redirected to the
// login page with the original location in the "next" parameter.
func (g *Gate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := g.Check(r.Context(), r)
		if !res.Allowed() {
			g.logDenied(r, res)
			http.Redirect(w, r, g.loginRedirect(r), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), res.UserID)))
	})
}

// RequireAPI gates JSON routes: denied requests get 401 with an error body.
func (g *Gate) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := g.Check(r.Context(), r)
		if !res.Allowed() {
			g.logDenied(r, res)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("WWW-Authenticate", `Bearer realm="tourdesk"`)
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), res.UserID)))
	})
}

func (g *Gate) logDenied(r *http.Request, res Result) {
	attrs := []any{"path", r.URL.Path, "status", res.Status.String()}
	if res.Err != nil {
		attrs = append(attrs, "error", res.Err)
	}
	if res.Status == StatusError {
		g.log.WarnContext(r.Context(), "session check failed", attrs...)
		return
	}
	g.log.DebugContext(r.Context(), "session denied", attrs...)
}

// loginRedirect returns the login URL with next set to the request's path
// and query.
func (g *Gate) loginRedirect(r *http.Request) string {
	u, err := url.Parse(g.cfg.LoginURL)
	if err != nil {
		return g.cfg.LoginURL
	}
	q := u.Query()
	q.Set("next", r.URL.RequestURI())
	u.RawQuery = q.Encode()
	return u.String()
}

// Token returns the bearer token from the Authorization header, falling
// back to the named cookie. It returns "" when neither is present.
func Token(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if cookieName == "" {
		return ""
	}
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
