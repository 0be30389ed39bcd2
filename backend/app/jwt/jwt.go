package jwtutil

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// tokenTTL is fixed: sessions live 24 hours from issue, regardless of
// activity. A changed admin flag only takes effect on re-login.
const tokenTTL = 24 * time.Hour

type Claims struct {
	UserID   int    `json:"userId"`
	UserName string `json:"user_name"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Role is derived from the claims once; handlers compare the value instead
// of re-reading the admin flag.
func (c *Claims) Role() Role { return RoleOf(c.IsAdmin) }

type Signer struct {
	Secret []byte
	Issuer string
}

func (s *Signer) Sign(userID int, userName string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID, UserName: userName, IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) { return s.Secret, nil })
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
