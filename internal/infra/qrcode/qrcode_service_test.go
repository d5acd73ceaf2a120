package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateVisitQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	visitID := uuid.New()

	pngBytes, err := svc.GenerateVisitQR(visitID)
	require.NoError(t, err)
	require.NotEmpty(t, pngBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, pngBytes[:4])
}

func TestQRCodeService_ParseVisitQR_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	visitID := uuid.New()

	payload, err := json.Marshal(QRCodeData{VisitID: visitID.String(), Type: "visit-badge"})
	require.NoError(t, err)

	parsed, err := svc.ParseVisitQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, visitID, parsed)
}

func TestQRCodeService_ParseVisitQR_Rejects(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{name: "not json", qrData: "plain text"},
		{name: "wrong type", qrData: `{"visit_id":"` + uuid.NewString() + `","type":"subscription"}`},
		{name: "bad uuid", qrData: `{"visit_id":"not-a-uuid","type":"visit-badge"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseVisitQR(tt.qrData)
			assert.Error(t, err)
		})
	}
}

func TestNewQRCodeService_DefaultsUnknownLevel(t *testing.T) {
	svc := NewQRCodeService(128, "X").(*qrcodeService)
	assert.Equal(t, 128, svc.size)
}
