package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestLead_Merge(t *testing.T) {
	t.Run("absent fields keep stored values", func(t *testing.T) {
		existing := &Lead{ID: "L1", DomainID: "D1", Email: strPtr("a@a.com"), UtmSource: strPtr("google")}
		incoming := &Lead{ID: "L1", DomainID: "D1", Phone: strPtr("123")}

		existing.Merge(incoming)

		assert.Equal(t, "a@a.com", *existing.Email)
		assert.Equal(t, "google", *existing.UtmSource)
		assert.Equal(t, "123", *existing.Phone)
	})

	t.Run("present fields overwrite", func(t *testing.T) {
		existing := &Lead{Email: strPtr("x@x.com")}
		existing.Merge(&Lead{Email: strPtr("y@y.com")})
		assert.Equal(t, "y@y.com", *existing.Email)
	})

	t.Run("merged values are copies", func(t *testing.T) {
		incoming := &Lead{City: strPtr("Recife")}
		existing := &Lead{}
		existing.Merge(incoming)

		*incoming.City = "Olinda"
		assert.Equal(t, "Recife", *existing.City)
	})

	t.Run("nil other is a no-op", func(t *testing.T) {
		existing := &Lead{Email: strPtr("a@a.com")}
		existing.Merge(nil)
		assert.Equal(t, "a@a.com", *existing.Email)
	})

	t.Run("json null behaves like an omitted key", func(t *testing.T) {
		var incoming Lead
		require.NoError(t, json.Unmarshal([]byte(`{"id":"L1","utm_source":null,"phone":"123"}`), &incoming))

		existing := &Lead{Email: strPtr("a@a.com"), UtmSource: strPtr("google")}
		existing.Merge(&incoming)

		assert.Equal(t, "a@a.com", *existing.Email)
		assert.Equal(t, "google", *existing.UtmSource)
		assert.Equal(t, "123", *existing.Phone)
	})
}

func TestLead_AttributesCoverEveryNullableField(t *testing.T) {
	lead := &Lead{}
	attrs := lead.Attributes()

	seen := map[string]bool{}
	for i, a := range attrs {
		assert.False(t, seen[a.Column], "duplicate column %s", a.Column)
		seen[a.Column] = true
		v := string(rune('a' + i))
		*a.Value = &v
	}

	data, err := json.Marshal(lead)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for column := range seen {
		assert.Contains(t, decoded, column)
	}
}

func TestLead_FillFirstTouch(t *testing.T) {
	lead := &Lead{
		Fbc:            strPtr("fb.1.123.abc"),
		UtmSource:      strPtr("google"),
		UtmCampaign:    strPtr("black-friday"),
		FirstUtmSource: strPtr("facebook"),
	}

	lead.FillFirstTouch()

	assert.Equal(t, "fb.1.123.abc", *lead.FirstFbc)
	assert.Equal(t, "facebook", *lead.FirstUtmSource)
	assert.Equal(t, "black-friday", *lead.FirstUtmCampaign)
	assert.Nil(t, lead.FirstUtmMedium)
}

func TestLead_Validate(t *testing.T) {
	assert.Error(t, (&Lead{}).Validate())
	assert.Error(t, (&Lead{DomainID: "D1", ID: "not-a-uuid"}).Validate())
	assert.Error(t, (&Lead{DomainID: "D1", Email: strPtr("nope")}).Validate())

	lead := &Lead{DomainID: "D1", ID: "6f1c1f4e-8d1c-4c5e-9a53-1b4a0a6d2f11", Email: strPtr(" A@A.com ")}
	require.NoError(t, lead.Validate())
	assert.Equal(t, "a@a.com", *lead.Email)
}
