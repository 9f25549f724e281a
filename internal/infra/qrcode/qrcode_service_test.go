package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestGenerateOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateOrderQR(uuid.New())
	require.NoError(t, err)

	require.Greater(t, len(png), len(pngSignature))
	assert.Equal(t, pngSignature, png[:len(pngSignature)])
}

func TestNewQRCodeService_UnknownLevelDefaults(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateOrderQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
