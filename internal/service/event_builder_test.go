package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeltrack/pixeltrack/internal/domain"
)

const (
	hashTestEmail = "973dfe463ec85785f5f95af5ba3906eedb2d931c24e69824a89ea65dba4e813b"
	hashPhone     = "b8e374ecc3a7a117a4df68efc21b0157f7c2ea542f7edaf29b33dc8818cf695e"
	hashAna       = "24d4b96f58da6d4a8512313bbd02a28ebf0ca95dec6e4c86ef78ce7f01e788ac"
	hashSilva     = "d24e913a4107af875dc2ac3d419798f3794d00434e5059fbb68ac8d33626eaee"
	hashRecife    = "41acd27dce768c6a1b0cec4aaded193674c27093e733d23424e492f8cc75aeac"
	hashPE        = "cdf69b25a417e25753dc086819d2cdfd3939f7d0e175136812e936284bebb4a4"
	hashBR        = "885036a0da3dff3c3e05bc79bf49382b12bc5098514ed57ce0875aba1aa2c40d"
)

func TestHashPII(t *testing.T) {
	assert.Equal(t, hashTestEmail, HashPII("test@example.com"))
	assert.Equal(t, hashTestEmail, HashPII("  TEST@Example.com "))
	assert.Len(t, HashPII("test@example.com"), 64)
	assert.Empty(t, HashPII("   "))
}

func TestHashPhone(t *testing.T) {
	assert.Equal(t, hashPhone, HashPhone("+55 (11) 99999-8888"))
	assert.Equal(t, hashPhone, HashPhone("5511999998888"))
	assert.Empty(t, HashPhone("n/a"))
}

func TestBuildServerEvent_MinimalEventHasNoNullKeys(t *testing.T) {
	event := &domain.Event{
		ID:        "e1",
		DomainID:  "d1",
		EventName: "PageView",
		EventTime: time.Unix(1717236000, 0),
	}

	se := BuildServerEvent(event, nil)

	data, err := json.Marshal(se)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"event_name": "PageView",
		"event_time": 1717236000,
		"action_source": "website",
		"user_data": {}
	}`, string(data))
	assert.NotContains(t, string(data), "null")
}

func TestBuildServerEvent_FullEventWithLead(t *testing.T) {
	event := &domain.Event{
		ID:           "e1",
		DomainID:     "d1",
		LeadID:       strPtr(leadID),
		EventID:      strPtr("evt-123"),
		EventName:    "Purchase",
		EventTime:    time.Unix(1717236000, 0),
		EventURL:     strPtr("https://shop.com/obrigado"),
		ProductID:    strPtr("sku-1"),
		ProductName:  strPtr("Curso"),
		ProductValue: floatPtr(197),
		Currency:     strPtr("BRL"),
		PredictedLTV: floatPtr(500),
		GeoIP:        strPtr("177.10.20.30"),
		GeoDevice:    strPtr("Mozilla/5.0"),
		GeoCity:      strPtr("Olinda"),
		Fbp:          strPtr("fb.1.1.fbp"),
	}
	lead := &domain.Lead{
		ID:          leadID,
		Name:        strPtr("Ana Maria Silva"),
		Email:       strPtr("TEST@example.com"),
		Phone:       strPtr("+55 (11) 99999-8888"),
		City:        strPtr("Recife"),
		State:       strPtr("PE"),
		CountryCode: strPtr("BR"),
		Fbc:         strPtr("fb.1.1.fbc"),
		Fbp:         strPtr("fb.1.1.lead-fbp"),
	}

	se := BuildServerEvent(event, lead)

	assert.Equal(t, "Purchase", se.EventName)
	assert.Equal(t, int64(1717236000), se.EventTime)
	assert.Equal(t, "evt-123", se.EventID)
	assert.Equal(t, "https://shop.com/obrigado", se.EventSourceURL)
	assert.Equal(t, "website", se.ActionSource)

	ud := se.UserData
	assert.Equal(t, "177.10.20.30", ud.ClientIPAddress)
	assert.Equal(t, "Mozilla/5.0", ud.ClientUserAgent)
	assert.Equal(t, "fb.1.1.fbc", ud.Fbc, "lead fbc fills an absent event fbc")
	assert.Equal(t, "fb.1.1.fbp", ud.Fbp, "event fbp wins over the lead")
	assert.Equal(t, []string{leadID}, ud.ExternalID)
	assert.Equal(t, []string{hashTestEmail}, ud.Em)
	assert.Equal(t, []string{hashPhone}, ud.Ph)
	assert.Equal(t, []string{hashAna}, ud.Fn)
	assert.Equal(t, []string{hashSilva}, ud.Ln)
	assert.Equal(t, []string{hashRecife}, ud.Ct, "lead city wins over the event geo city")
	assert.Equal(t, []string{hashPE}, ud.St)
	assert.Equal(t, []string{hashBR}, ud.Country)
	assert.Nil(t, ud.Zp)

	require.NotNil(t, se.CustomData)
	assert.Equal(t, 197.0, *se.CustomData.Value)
	assert.Equal(t, "BRL", se.CustomData.Currency)
	assert.Equal(t, "Curso", se.CustomData.ContentName)
	assert.Equal(t, []string{"sku-1"}, se.CustomData.ContentIDs)
	assert.Equal(t, 500.0, *se.CustomData.PredictedLTV)

	data, err := json.Marshal(se)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "test@example.com")
	assert.NotContains(t, string(data), "99999")
	assert.NotContains(t, string(data), "Recife")
}

func TestBuildServerEvent_EventGeoFillsMissingLeadData(t *testing.T) {
	event := &domain.Event{
		EventName:  "Lead",
		EventTime:  time.Unix(0, 0),
		LeadID:     strPtr(leadID),
		GeoCity:    strPtr("Recife"),
		GeoState:   strPtr("PE"),
		GeoCountry: strPtr("BR"),
	}

	se := BuildServerEvent(event, &domain.Lead{ID: leadID, FirstName: strPtr("Ana")})

	assert.Equal(t, []string{hashAna}, se.UserData.Fn)
	assert.Nil(t, se.UserData.Ln)
	assert.Equal(t, []string{hashRecife}, se.UserData.Ct)
	assert.Equal(t, []string{hashPE}, se.UserData.St)
	assert.Equal(t, []string{hashBR}, se.UserData.Country)
	assert.Nil(t, se.UserData.Em)
}

func TestBuildServerEvent_CustomDataPreference(t *testing.T) {
	event := &domain.Event{
		EventName:    "ViewContent",
		EventTime:    time.Unix(0, 0),
		Value:        floatPtr(10),
		ProductValue: floatPtr(99),
		ContentName:  strPtr("Página"),
		ProductName:  strPtr("Produto"),
		ContentIDs:   []string{"a", "b"},
		ProductID:    strPtr("sku"),
	}

	custom := BuildServerEvent(event, nil).CustomData
	require.NotNil(t, custom)
	assert.Equal(t, 10.0, *custom.Value)
	assert.Equal(t, "Página", custom.ContentName)
	assert.Equal(t, []string{"a", "b"}, custom.ContentIDs)
	assert.Nil(t, custom.PredictedLTV)
}

func TestSplitName(t *testing.T) {
	first, last := splitName(&domain.Lead{Name: strPtr("  Ana  ")})
	assert.Equal(t, "Ana", first)
	assert.Empty(t, last)

	first, last = splitName(&domain.Lead{Name: strPtr("Ana Silva"), LastName: strPtr("Souza")})
	assert.Empty(t, first)
	assert.Equal(t, "Souza", last)

	first, last = splitName(&domain.Lead{})
	assert.Empty(t, first)
	assert.Empty(t, last)
}
