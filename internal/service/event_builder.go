package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/pixeltrack/pixeltrack/internal/domain"
)

// BuildServerEvent maps a stored event, and optionally its lead, to a Conversions API event.
// It performs no I/O. Personal data only leaves hashed.
func BuildServerEvent(event *domain.Event, lead *domain.Lead) domain.ServerEvent {
	se := domain.ServerEvent{
		EventName:      event.EventName,
		EventTime:      event.EventTime.Unix(),
		EventID:        deref(event.EventID),
		EventSourceURL: deref(event.EventURL),
		ActionSource:   domain.ActionSourceWebsite,
		UserData: domain.UserData{
			ClientIPAddress: deref(event.GeoIP),
			ClientUserAgent: deref(event.GeoDevice),
			Fbc:             deref(event.Fbc),
			Fbp:             deref(event.Fbp),
			ExternalID:      single(deref(event.LeadID)),
		},
	}

	var city, state, zip, country string
	if lead != nil {
		ud := &se.UserData
		if ud.Fbc == "" {
			ud.Fbc = deref(lead.Fbc)
		}
		if ud.Fbp == "" {
			ud.Fbp = deref(lead.Fbp)
		}

		firstName, lastName := splitName(lead)
		ud.Em = single(HashPII(deref(lead.Email)))
		ud.Ph = single(HashPhone(deref(lead.Phone)))
		ud.Fn = single(HashPII(firstName))
		ud.Ln = single(HashPII(lastName))

		city = deref(lead.City)
		state = deref(lead.State)
		zip = deref(lead.Zipcode)
		country = deref(lead.CountryCode)
	}

	se.UserData.Ct = single(HashPII(firstNonEmpty(city, deref(event.GeoCity))))
	se.UserData.St = single(HashPII(firstNonEmpty(state, deref(event.GeoState))))
	se.UserData.Zp = single(HashPII(firstNonEmpty(zip, deref(event.GeoZipcode))))
	se.UserData.Country = single(HashPII(firstNonEmpty(country, deref(event.GeoCountry))))

	custom := &domain.CustomData{
		Value:        event.Value,
		Currency:     deref(event.Currency),
		ContentName:  firstNonEmpty(deref(event.ContentName), deref(event.ProductName)),
		ContentIDs:   event.ContentIDs,
		PredictedLTV: event.PredictedLTV,
	}
	if custom.Value == nil {
		custom.Value = event.ProductValue
	}
	if len(custom.ContentIDs) == 0 {
		custom.ContentIDs = single(deref(event.ProductID))
	}
	if !custom.IsEmpty() {
		se.CustomData = custom
	}

	return se
}

// HashPII returns the SHA-256 hex digest of the trimmed, lower-cased value, or "" for an empty value
func HashPII(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// HashPhone hashes the digits of a phone number
func HashPhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	return HashPII(digits)
}

func splitName(lead *domain.Lead) (string, string) {
	first, last := deref(lead.FirstName), deref(lead.LastName)
	if first != "" || last != "" || lead.Name == nil {
		return first, last
	}

	parts := strings.Fields(*lead.Name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[len(parts)-1]
	}
}

func single(value string) []string {
	if value == "" {
		return nil
	}
	return []string{value}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
