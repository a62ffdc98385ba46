package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BusinessHub-api/pkg/jwt"
)

const secret = "segredo-de-teste"

func TestGenerateParse_RoundTrip(t *testing.T) {
	in := jwt.Identity{UserID: "u1", EmpresaID: "e1", Role: "admin", GlobalAdmin: true}
	tok, err := jwt.Generate(secret, in, "businesshub", 5)
	require.NoError(t, err)

	out, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParse_SegredoErrado(t *testing.T) {
	tok, err := jwt.Generate(secret, jwt.Identity{UserID: "u1", EmpresaID: "e1", Role: "user"}, "businesshub", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("outro-segredo", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate(secret, jwt.Identity{UserID: "u1", EmpresaID: "e1", Role: "user"}, "businesshub", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestGenerate_SemSegredo(t *testing.T) {
	_, err := jwt.Generate("", jwt.Identity{UserID: "u1"}, "x", 5)
	assert.Error(t, err)
}
