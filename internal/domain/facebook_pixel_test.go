package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacebookPixel_Validate(t *testing.T) {
	tag := "TEST123"
	blank := "  "

	tests := []struct {
		name    string
		pixel   FacebookPixel
		wantErr bool
	}{
		{"valid", FacebookPixel{DomainID: "d1", PixelID: " 1234567890 ", APIToken: "EAAB"}, false},
		{"valid with active tag", FacebookPixel{DomainID: "d1", PixelID: "1", APIToken: "EAAB", TestTag: &tag, TestTagActive: true}, false},
		{"missing domain", FacebookPixel{PixelID: "1", APIToken: "EAAB"}, true},
		{"non numeric pixel id", FacebookPixel{DomainID: "d1", PixelID: "abc", APIToken: "EAAB"}, true},
		{"missing token", FacebookPixel{DomainID: "d1", PixelID: "1"}, true},
		{"active tag without value", FacebookPixel{DomainID: "d1", PixelID: "1", APIToken: "EAAB", TestTag: &blank, TestTagActive: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pixel.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFacebookPixel_TestEventCode(t *testing.T) {
	tag := "TEST123"

	assert.Equal(t, "TEST123", (&FacebookPixel{TestTag: &tag, TestTagActive: true}).TestEventCode())
	assert.Equal(t, "", (&FacebookPixel{TestTag: &tag}).TestEventCode())
	assert.Equal(t, "", (&FacebookPixel{TestTagActive: true}).TestEventCode())
}
