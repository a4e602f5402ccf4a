package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Validate(t *testing.T) {
	leadID := "6f1c1f4e-8d1c-4c5e-9a53-1b4a0a6d2f11"
	badLead := "L1"
	badURL := "::not a url"
	negative := -5.0

	tests := []struct {
		name    string
		event   Event
		wantErr bool
	}{
		{"minimal", Event{DomainID: "d1", EventName: "PageView"}, false},
		{"with lead", Event{DomainID: "d1", EventName: "Lead", LeadID: &leadID}, false},
		{"missing domain", Event{EventName: "PageView"}, true},
		{"blank name", Event{DomainID: "d1", EventName: "  "}, true},
		{"lead id not a uuid", Event{DomainID: "d1", EventName: "Lead", LeadID: &badLead}, true},
		{"bad url", Event{DomainID: "d1", EventName: "PageView", EventURL: &badURL}, true},
		{"negative value", Event{DomainID: "d1", EventName: "Purchase", Value: &negative}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEvent_ApplyConversion(t *testing.T) {
	value := 97.0
	name := "Curso"
	ownName := "Ebook"
	conversion := &Conversion{
		EventName:    "Purchase",
		ProductName:  &name,
		ProductValue: &value,
		Currency:     "BRL",
	}

	event := &Event{ProductName: &ownName}
	event.ApplyConversion(conversion)

	assert.Equal(t, "Purchase", event.EventName)
	assert.Equal(t, "Ebook", *event.ProductName)
	assert.Equal(t, 97.0, *event.ProductValue)
	assert.Equal(t, "BRL", *event.Currency)

	named := &Event{EventName: "Lead"}
	named.ApplyConversion(conversion)
	assert.Equal(t, "Lead", named.EventName)

	untouched := &Event{}
	untouched.ApplyConversion(nil)
	assert.Empty(t, untouched.EventName)
}

func TestSendEventRequest_Validate(t *testing.T) {
	assert.Error(t, (&SendEventRequest{Event: &Event{}}).Validate())
	assert.Error(t, (&SendEventRequest{PixelID: "p1"}).Validate())
	assert.NoError(t, (&SendEventRequest{PixelID: "p1", Event: &Event{}}).Validate())
}

func TestCustomData_IsEmpty(t *testing.T) {
	assert.True(t, (&CustomData{}).IsEmpty())
	assert.False(t, (&CustomData{Currency: "BRL"}).IsEmpty())
	assert.False(t, (&CustomData{ContentIDs: []string{"p1"}}).IsEmpty())
}
