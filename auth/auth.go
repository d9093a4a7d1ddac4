// Copyright 2025 Fanstake Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTtl is how long issued tokens remain valid
const DefaultTokenTtl = 7 * 24 * time.Hour

// ErrInvalidToken is returned when a token fails verification for any reason
var ErrInvalidToken = errors.New("invalid token")

// ErrInvalidCredentials is returned when a password check fails
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator issues and verifies bearer tokens and handles password
// hashing
type Authenticator struct {
	secret   []byte
	tokenTtl time.Duration
}

// NewAuthenticator returns an Authenticator signing with the given
// secret. A zero ttl selects the default token lifetime.
func NewAuthenticator(secret string, tokenTtl time.Duration) *Authenticator {
	if tokenTtl <= 0 {
		tokenTtl = DefaultTokenTtl
	}
	return &Authenticator{
		secret:   []byte(secret),
		tokenTtl: tokenTtl,
	}
}

// HashPassword returns a bcrypt hash for the given password
func (a *Authenticator) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a password against a stored bcrypt hash
func (a *Authenticator) CheckPassword(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword(
		[]byte(hash),
		[]byte(password),
	); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NewToken issues a signed token for the given user ID
func (a *Authenticator) NewToken(userId string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			Subject:   userId,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTtl)),
		},
	)
	return token.SignedString(a.secret)
}

// VerifyToken checks a token's signature and expiry and returns the
// user ID it was issued for
func (a *Authenticator) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf(
					"unexpected signing method: %v",
					token.Header["alg"],
				)
			}
			return a.secret, nil
		},
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
