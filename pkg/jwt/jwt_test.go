package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/CentralKitchen-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func staffSubject() pkgjwt.Subject {
	return pkgjwt.Subject{
		UserID:    "00000000-0000-0000-0000-000000000005",
		Username:  "staff_old",
		Name:      "David Lee",
		Role:      "Franchise Store Staff",
		StoreID:   "ST-010",
		StoreName: "District 10 Store",
	}
}

func TestGenerateAndParse_ConservaIdentidad(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, staffSubject(), "ck-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "staff_old", claims.Username)
	assert.Equal(t, "Franchise Store Staff", claims.Role)
	assert.Equal(t, "ST-010", claims.StoreID)
	assert.Equal(t, "District 10 Store", claims.StoreName)
	assert.Equal(t, claims.UserID, claims.Subject)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, staffSubject(), "ck-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, staffSubject(), "ck-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", staffSubject(), "ck-test", 60)
	assert.Error(t, err)
}
