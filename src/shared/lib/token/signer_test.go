package token_test

import (
	"time"

	"github.com/dev334/hemo-be/src/shared/lib/token"
	. "github.com/dev334/hemo-be/src/shared/testing"
	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HS256Signer", func() {
	var (
		signer token.HS256Signer
	)

	BeforeEach(func() {
		signer = token.HS256Signer{
			Secret: "signing-test-secret",
			TTL:    time.Hour,
		}
	})

	parseToken := func(signed string, secret string) (*jwt.Token, error) {
		return jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
	}

	It("issues a token carrying the user ID as the subject", func() {
		signed := ExpectSuccess(signer.Sign("some-user-id"))

		parsed := ExpectSuccess(parseToken(signed, signer.Secret))
		Expect(parsed.Valid).To(BeTrue())

		claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
		Expect(ok).To(BeTrue())
		Expect(claims.Subject).To(Equal("some-user-id"))
	})

	It("stamps the expiry a TTL away", func() {
		signed := ExpectSuccess(signer.Sign("some-user-id"))

		parsed := ExpectSuccess(parseToken(signed, signer.Secret))
		claims := parsed.Claims.(*jwt.RegisteredClaims)

		lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		Expect(lifetime).To(Equal(time.Hour))
	})

	It("produces tokens another secret can't validate", func() {
		signed := ExpectSuccess(signer.Sign("some-user-id"))

		_, err := parseToken(signed, "a-different-secret")
		Expect(err).To(HaveOccurred())
	})
})
