package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/abhishekode/aakash-sweets-restaurant/configs"
)

// Authz guards the admin panel. A single admin account is configured; login
// issues a short-lived HS256 token that the middleware checks on every
// admin route.
type Authz struct {
	cfg configs.Config
}

func NewAuthz(cfg configs.Config) *Authz {
	return &Authz{cfg: cfg}
}

type LoginRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a *Authz) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.cfg.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.cfg.Admin.Password)) == 1
	if !userOK || !passOK {
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
		return
	}

	ttl := a.cfg.Admin.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	expiresAt := time.Now().Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": a.cfg.Admin.Issuer,
		"sub": req.Username,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(a.cfg.Admin.JWTSecret))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "could not issue token")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponseDTO{Token: signed, ExpiresAt: expiresAt})
}

// Require rejects requests without a valid admin bearer token.
func (a *Authz) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(w, "invalid_request", "missing bearer token")
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(a.cfg.Admin.JWTSecret), nil
		}, jwt.WithLeeway(30*time.Second)) // small clock skew

		if err != nil || !token.Valid {
			unauth(w, "invalid_token", "invalid jwt")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauth(w, "invalid_token", "claims parsing error")
			return
		}
		if claims["iss"] != a.cfg.Admin.Issuer {
			unauth(w, "invalid_token", "iss mismatch")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauth(w http.ResponseWriter, code, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	respondError(w, http.StatusUnauthorized, code, desc)
}
