package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"vantage/internal/auth"
	"vantage/pkg/domain"
	"vantage/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// genRSAKeys generates an RSA key pair and returns both keys PEM encoded.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return priv, string(privPEM), string(pubPEM)
}

func signJWT(tb testing.TB, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	tb.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestIssuer_RoundTrip(t *testing.T) {
	_, privPEM, _ := genRSAKeys(t)
	iss, err := auth.NewIssuer(privPEM, "", 8*24*time.Hour)
	require.NoError(t, err)

	tok, err := iss.Issue(42)
	require.NoError(t, err)
	require.Equal(t, "bearer", tok.TokenType)
	require.WithinDuration(t, time.Now().Add(8*24*time.Hour), tok.ExpiresAt, 2*time.Second)

	claims, err := iss.Parse(tok.AccessToken)
	require.NoError(t, err)
	require.Equal(t, domain.UserID(42), claims.UserID)
	require.NotEmpty(t, claims.JTI)

	// every token carries its own id
	tok2, err := iss.Issue(42)
	require.NoError(t, err)
	claims2, err := iss.Parse(tok2.AccessToken)
	require.NoError(t, err)
	require.NotEqual(t, claims.JTI, claims2.JTI)
}

func TestIssuer_VerifyOnly(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	iss, err := auth.NewIssuer("", pubPEM, time.Hour)
	require.NoError(t, err)

	_, err = iss.Issue(1)
	require.Error(t, err)

	now := time.Now()
	raw := signJWT(t, jwt.SigningMethodRS256, priv, jwt.RegisteredClaims{
		Subject:   "7",
		ID:        "jti-1",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	claims, err := iss.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, domain.UserID(7), claims.UserID)
	require.Equal(t, "jti-1", claims.JTI)
}

func TestIssuer_NoKeys(t *testing.T) {
	_, err := auth.NewIssuer("", "", time.Hour)
	require.Error(t, err)

	_, err = auth.NewIssuer("not a pem", "", time.Hour)
	require.Error(t, err)
}

func TestIssuer_ParseRejects(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	other, _, _ := genRSAKeys(t)
	iss, err := auth.NewIssuer("", pubPEM, time.Hour)
	require.NoError(t, err)

	now := time.Now()
	valid := jwt.RegisteredClaims{
		Subject:   "7",
		ID:        "jti",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	noExp := valid
	noExp.ExpiresAt = nil

	badSubject := valid
	badSubject.Subject = "not-a-number"

	noID := valid
	noID.ID = ""

	tests := map[string]string{
		"invalid signature": signJWT(t, jwt.SigningMethodRS256, other, valid),
		"expired":           signJWT(t, jwt.SigningMethodRS256, priv, expired),
		"no expiry":         signJWT(t, jwt.SigningMethodRS256, priv, noExp),
		"bad subject":       signJWT(t, jwt.SigningMethodRS256, priv, badSubject),
		"no id":             signJWT(t, jwt.SigningMethodRS256, priv, noID),
		"wrong algorithm":   signJWT(t, jwt.SigningMethodHS256, []byte("secret"), valid),
		"garbage":           "abc.def.ghi",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := iss.Parse(raw)
			require.Error(t, err)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestPassword(t *testing.T) {
	h, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	require.True(t, auth.CheckPassword(h, "s3cret"))
	require.False(t, auth.CheckPassword(h, "wrong"))
	require.False(t, auth.CheckPassword("not-a-hash", "s3cret"))
}
