package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_KnownVector(t *testing.T) {
	// sha256("admin"), used by the legacy migration's synthesized account.
	want := "8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918"
	require.Equal(t, want, HashPassword("admin"))
}

func TestHashPassword_Deterministic(t *testing.T) {
	a := HashPassword("s3cret")
	b := HashPassword("s3cret")
	require.Equal(t, a, b)
	require.Len(t, a, 64)
}

func TestHashPassword_DistinctInputs(t *testing.T) {
	require.NotEqual(t, HashPassword("s3cret"), HashPassword("s3cret "))
	require.NotEqual(t, HashPassword(""), HashPassword("a"))
}
