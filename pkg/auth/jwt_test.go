package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/gomega"
)

func TestCreateAndVerifyToken(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "test-secret"}

	token, err := j.CreateToken(42)
	Expect(err).To(BeNil())
	Expect(token).To(Not(BeEmpty()))

	userID, err := j.VerifyToken(token)
	Expect(err).To(BeNil())
	Expect(userID).To(Equal(42))
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	RegisterTestingT(t)

	signer := JWT{Secret: "one-secret"}
	verifier := JWT{Secret: "another-secret"}

	token, err := signer.CreateToken(42)
	Expect(err).To(BeNil())

	_, err = verifier.VerifyToken(token)
	Expect(err).To(HaveOccurred())
}

func TestVerifyTokenGarbage(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "test-secret"}

	_, err := j.VerifyToken("not-a-token")
	Expect(err).To(HaveOccurred())
}

func TestVerifyTokenExpired(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "test-secret"}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"iat":     time.Now().Add(-4 * time.Hour).Unix(),
		"exp":     time.Now().Add(-1 * time.Hour).Unix(),
	})

	token, err := expired.SignedString([]byte(j.Secret))
	Expect(err).To(BeNil())

	_, err = j.VerifyToken(token)
	Expect(err).To(HaveOccurred())
}

func TestVerifyTokenMissingUserID(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "test-secret"}

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := anonymous.SignedString([]byte(j.Secret))
	Expect(err).To(BeNil())

	_, err = j.VerifyToken(token)
	Expect(err).To(HaveOccurred())
}

func TestVerifyTokenRejectsUnsignedAlg(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "test-secret"}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	Expect(err).To(BeNil())

	_, err = j.VerifyToken(token)
	Expect(err).To(HaveOccurred())
}
