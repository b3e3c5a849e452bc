package cryptox

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_DeterministicAndSaltSensitive(t *testing.T) {
	secret := bytes.Repeat([]byte{7}, SecretSize)

	k1 := DeriveKey(secret, []byte("salt-1"))
	k2 := DeriveKey(secret, []byte("salt-1"))
	k3 := DeriveKey(secret, []byte("salt-2"))

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("device"), []byte("medfinder"))

	sealed, err := Seal(key, []byte("bearer-token"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "bearer-token")

	plain, err := Open(key, sealed)
	require.NoError(t, err)
	assert.Equal(t, "bearer-token", string(plain))
}

func TestSeal_UsesFreshNonce(t *testing.T) {
	key := DeriveKey([]byte("device"), []byte("medfinder"))

	a, err := Seal(key, []byte("same"))
	require.NoError(t, err)
	b, err := Seal(key, []byte("same"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpen_WrongKeyOrTampered(t *testing.T) {
	key := DeriveKey([]byte("device"), []byte("medfinder"))
	other := DeriveKey([]byte("other"), []byte("medfinder"))

	sealed, err := Seal(key, []byte("payload"))
	require.NoError(t, err)

	_, err = Open(other, sealed)
	assert.ErrorIs(t, err, ErrCorrupted)

	sealed[len(sealed)-1] ^= 0xFF
	_, err = Open(key, sealed)
	assert.ErrorIs(t, err, ErrCorrupted)

	_, err = Open(key, []byte{1, 2})
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestLoadOrCreateSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "device.key")

	first, err := LoadOrCreateSecret(path)
	require.NoError(t, err)
	assert.Len(t, first, SecretSize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := LoadOrCreateSecret(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadOrCreateSecret_RejectsWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.key")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := LoadOrCreateSecret(path)
	assert.Error(t, err)
}
