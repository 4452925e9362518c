package ghapp_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/infra/ghapp"
)

func genTestKey(t *testing.T) (types.GitHubAppPrivateKey, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	gt.NoError(t, err)

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	return types.GitHubAppPrivateKey(pemBytes), key
}

func TestNewSigner(t *testing.T) {
	pemKey, _ := genTestKey(t)

	t.Run("valid key", func(t *testing.T) {
		signer, err := ghapp.NewSigner(12345, pemKey)
		gt.NoError(t, err)
		gt.V(t, signer).NotEqual(nil)
	})

	t.Run("missing app ID", func(t *testing.T) {
		_, err := ghapp.NewSigner(0, pemKey)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrConfiguration))
	})

	t.Run("missing private key", func(t *testing.T) {
		_, err := ghapp.NewSigner(12345, "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrConfiguration))
	})

	t.Run("garbage private key", func(t *testing.T) {
		_, err := ghapp.NewSigner(12345, "not a pem")
		gt.Error(t, err)
	})
}

func TestNewSignerNormalization(t *testing.T) {
	pemKey, _ := genTestKey(t)

	testCases := []struct {
		name string
		key  string
	}{
		{
			name: "literal newline escapes",
			key:  strings.ReplaceAll(string(pemKey), "\n", `\n`),
		},
		{
			name: "double quoted",
			key:  `"` + string(pemKey) + `"`,
		},
		{
			name: "single quoted",
			key:  `'` + string(pemKey) + `'`,
		},
		{
			name: "quoted with escaped newlines",
			key:  `"` + strings.ReplaceAll(string(pemKey), "\n", `\n`) + `"`,
		},
		{
			name: "surrounding whitespace",
			key:  "\n  " + string(pemKey) + "  \n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ghapp.NewSigner(12345, types.GitHubAppPrivateKey(tc.key))
			gt.NoError(t, err)
		})
	}
}

func TestSignedAssertion(t *testing.T) {
	pemKey, key := genTestKey(t)

	signer := gt.R1(ghapp.NewSigner(12345, pemKey)).NoError(t)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assertion := gt.R1(signer.SignedAssertion(now)).NoError(t)

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(assertion, &claims, func(token *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	}, jwt.WithoutClaimsValidation())
	gt.NoError(t, err)
	gt.True(t, token.Valid)
	gt.V(t, token.Method.Alg()).Equal("RS256")

	gt.V(t, claims.Issuer).Equal("12345")
	gt.True(t, claims.IssuedAt.Time.Equal(now.Add(-time.Minute)))
	gt.True(t, claims.ExpiresAt.Time.Equal(now.Add(10*time.Minute)))
}
