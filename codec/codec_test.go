package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := Key("server-secret")

	cipher, err := Encrypt(key, []byte(`{"code":"042137"}`))
	require.NoError(t, err)
	assert.NotContains(t, cipher, "042137")

	plain, err := Decrypt(key, cipher)
	require.NoError(t, err)
	assert.Equal(t, `{"code":"042137"}`, string(plain))
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	cipher, err := Encrypt(Key("right"), []byte("payload"))
	require.NoError(t, err)

	plain, err := Decrypt(Key("wrong"), cipher)
	if err == nil {
		assert.NotEqual(t, "payload", string(plain))
	}
}

func TestDecryptRejectsShortInput(t *testing.T) {
	_, err := Decrypt(Key("secret"), "dG9vc2hvcnQ=")
	assert.Error(t, err)
}
