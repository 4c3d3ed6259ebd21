package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"tapadmin/config"
)

func TestGenerateJoinQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	png, err := svc.GenerateJoinQR("merchant-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestGenerateJoinQR_EmptyMerchant(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GenerateJoinQR("")
	assert.Error(t, err)
}
