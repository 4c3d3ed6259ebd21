// Package qrcode renders merchant join codes.
package qrcode

import (
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"

	"tapadmin/config"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/errors"
)

const defaultSize = 256

// qrService implements service.QRCodeService.
type qrService struct {
	baseURL string
	size    int
	level   qr.RecoveryLevel
}

// NewQRCodeService is the constructor for qrService.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	baseURL := "https://tap.example.com/join"
	size := defaultSize
	level := qr.Medium

	if cfg.QRCode != nil {
		if cfg.QRCode.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
		}
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = parseLevel(cfg.QRCode.ErrorCorrectionLevel)
	}

	return &qrService{baseURL: baseURL, size: size, level: level}
}

// GenerateJoinQR renders the merchant join URL as a PNG.
func (s *qrService) GenerateJoinQR(merchantID string) ([]byte, error) {
	if merchantID == "" {
		return nil, errors.New("merchant id must be provided")
	}

	png, err := qr.Encode(fmt.Sprintf("%s/%s", s.baseURL, merchantID), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode join qr")
	}

	return png, nil
}

func parseLevel(level string) qr.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qr.Low
	case "Q":
		return qr.High
	case "H":
		return qr.Highest
	default:
		return qr.Medium
	}
}
