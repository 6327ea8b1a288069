package utils // package utils provides helpers for reading and minting access credentials

import (
	"errors" // sentinel errors for decode failures
	"fmt"    // error wrapping
	"time"   // expiry checks and token lifetimes

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and signing tokens

	"github.com/iliyamo/car-rental-web/internal/model" // identity and role types
)

var (
	// ErrMalformedCredential covers anything that is not a readable JWT.
	ErrMalformedCredential = errors.New("malformed credential")
	// ErrExpiredCredential is returned when exp is missing or not in the future.
	ErrExpiredCredential = errors.New("credential expired")
)

// AccessClaims mirrors the claims the backend embeds in its access
// credential.  customer_id and customer_name are only present on customer
// accounts.
type AccessClaims struct {
	UserID       int64  `json:"user_id,omitempty"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	CustomerID   *int64 `json:"customer_id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	jwt.RegisteredClaims
}

// Identity converts the claims into the identity exposed to handlers.
func (c AccessClaims) Identity() model.Identity {
	id := model.Identity{
		UserID:       c.UserID,
		Username:     c.Username,
		Email:        c.Email,
		Role:         model.Role(c.Role),
		CustomerID:   c.CustomerID,
		CustomerName: c.CustomerName,
	}
	if c.ExpiresAt != nil {
		id.ExpiresAt = c.ExpiresAt.Time
	}
	return id
}

// Decoder turns an access credential into claims.  With a secret it verifies
// the HMAC signature; without one it only decodes, the same trust level a
// browser has when it reads its own cookie.  Expiry is enforced either way.
type Decoder struct {
	secret []byte
	now    func() time.Time
}

// NewDecoder returns a Decoder.  An empty secret disables signature checks.
func NewDecoder(secret string) *Decoder {
	d := &Decoder{now: time.Now}
	if secret != "" {
		d.secret = []byte(secret)
	}
	return d
}

// WithClock replaces the decoder's clock; used by tests.
func (d *Decoder) WithClock(now func() time.Time) *Decoder {
	cp := *d
	cp.now = now
	return &cp
}

// Decode parses raw and checks that it carries an expiry in the future.
func (d *Decoder) Decode(raw string) (AccessClaims, error) {
	var claims AccessClaims
	if raw == "" {
		return claims, ErrMalformedCredential
	}
	if d.secret != nil {
		// Expiry is checked below against our own clock.
		p := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}), jwt.WithoutClaimsValidation())
		if _, err := p.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
			return d.secret, nil
		}); err != nil {
			return AccessClaims{}, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
			return AccessClaims{}, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
		}
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(d.now()) {
		return AccessClaims{}, ErrExpiredCredential
	}
	return claims, nil
}

// AccessToken represents a signed access credential along with its expiry.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 access credential with the same
// claim layout the backend uses.  It exists for local development (see
// cmd/devtoken) and tests; production credentials always come from the
// backend.
func NewAccessToken(secret string, id model.Identity, ttl time.Duration) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := AccessClaims{
		UserID:       id.UserID,
		Username:     id.Username,
		Email:        id.Email,
		Role:         string(id.Role),
		CustomerID:   id.CustomerID,
		CustomerName: id.CustomerName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
