package ghapp

import (
	"crypto/rsa"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/m-mizutani/goerr/v2"

	"github.com/gitfolio/gitfolio/pkg/domain/types"
)

const (
	// App assertions are valid for at most 10 minutes by the GitHub App
	// protocol. The issued-at claim is backdated to tolerate clock skew
	// between this process and the verifier.
	assertionLifetime = 10 * time.Minute
	clockSkewMargin   = 60 * time.Second
)

// Signer produces short-lived signed assertions proving the app's
// identity. It is a pure function of its immutable credentials and the
// given time.
type Signer struct {
	appID types.GitHubAppID
	key   *rsa.PrivateKey
}

func NewSigner(appID types.GitHubAppID, pem types.GitHubAppPrivateKey) (*Signer, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrConfiguration, "app ID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrConfiguration, "private key is empty")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(normalizePrivateKey(pem)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse app private key")
	}

	return &Signer{
		appID: appID,
		key:   key,
	}, nil
}

// normalizePrivateKey repairs key material mangled by environment
// variable transport: literal `\n` sequences become real newlines and
// surrounding quote characters are stripped.
func normalizePrivateKey(pem types.GitHubAppPrivateKey) string {
	key := strings.ReplaceAll(string(pem), `\n`, "\n")

	if strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) && len(key) >= 2 {
		key = key[1 : len(key)-1]
	}
	if strings.HasPrefix(key, `'`) && strings.HasSuffix(key, `'`) && len(key) >= 2 {
		key = key[1 : len(key)-1]
	}

	return strings.TrimSpace(key)
}

// SignedAssertion returns an RS256-signed app JWT with
// iat = now - 60s, exp = now + 10m and iss = app ID.
func (x *Signer) SignedAssertion(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now.Add(-clockSkewMargin)),
		ExpiresAt: jwt.NewNumericDate(now.Add(assertionLifetime)),
		Issuer:    strconv.FormatInt(int64(x.appID), 10),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(x.key)
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign app assertion")
	}

	return signed, nil
}
