// Package auth signs and verifies session tokens and carries the verified
// caller through request contexts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claim kinds understood by Sign.
const (
	ClaimName    = "name"
	ClaimTokenID = "jti"
	ClaimRole    = "role"
)

// Claim is one assertion about the token subject. A claim set is an ordered
// list; ClaimRole may appear any number of times.
type Claim struct {
	Kind  string
	Value string
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Name  string           `json:"name"`
	Roles jwt.ClaimStrings `json:"role,omitempty"`
}

var errEmptySecret = errors.New("empty signing secret")

// Sign produces an HS256 JWT for claims. It has no side effects: the same
// inputs always give the same token.
func Sign(claims []Claim, secret []byte, issuer, audience string, issuedAt, expiresAt time.Time) (string, error) {
	if len(secret) == 0 {
		return "", errEmptySecret
	}

	tc := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if audience != "" {
		tc.Audience = jwt.ClaimStrings{audience}
	}

	for _, c := range claims {
		switch c.Kind {
		case ClaimName:
			tc.Name = c.Value
		case ClaimTokenID:
			tc.ID = c.Value
		case ClaimRole:
			tc.Roles = append(tc.Roles, c.Value)
		default:
			return "", fmt.Errorf("unsupported claim kind %q", c.Kind)
		}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(secret)
}

// Principal is the verified caller behind a session token.
type Principal struct {
	Name      string
	TokenID   string
	Roles     []string
	ExpiresAt time.Time
}

func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Verifier checks tokens produced by Sign with the same secret, issuer and
// audience.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret []byte, issuer, audience string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &Verifier{secret: secret, parser: jwt.NewParser(opts...)}
}

// Verify parses tokenString. Expired tokens yield common.ErrTokenExpired;
// every other failure yields common.ErrInvalidToken.
func (v *Verifier) Verify(tokenString string) (*Principal, error) {
	tc := &tokenClaims{}

	token, err := v.parser.ParseWithClaims(tokenString, tc, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || tc.Name == "" {
		return nil, common.ErrInvalidToken
	}

	return &Principal{
		Name:      tc.Name,
		TokenID:   tc.ID,
		Roles:     []string(tc.Roles),
		ExpiresAt: tc.ExpiresAt.Time,
	}, nil
}
