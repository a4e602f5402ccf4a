package geoip

import (
	"encoding/json"
	"errors"
	"net"
	"testing"

	"github.com/oschwald/geoip2-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	record *geoip2.City
	err    error
	asked  net.IP
	closed bool
}

func (f *fakeReader) City(ip net.IP) (*geoip2.City, error) {
	f.asked = ip
	return f.record, f.err
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func cityRecord(t *testing.T, raw string) *geoip2.City {
	t.Helper()
	var record geoip2.City
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	return &record
}

func TestReaderLocator_Lookup(t *testing.T) {
	reader := &fakeReader{record: cityRecord(t, `{
		"City": {"Names": {"en": "Recife", "pt-BR": "Recife"}},
		"Country": {"IsoCode": "BR", "Names": {"en": "Brazil", "pt-BR": "Brasil"}},
		"Subdivisions": [{"IsoCode": "PE", "Names": {"en": "Pernambuco"}}],
		"Postal": {"Code": "50000"}
	}`)}
	locator := newReaderLocator(reader)

	location, err := locator.Lookup("177.10.20.30")
	require.NoError(t, err)
	require.NotNil(t, location)

	assert.Equal(t, "177.10.20.30", reader.asked.String())
	assert.Equal(t, &Location{
		Country:     "Brasil",
		CountryCode: "BR",
		State:       "PE",
		City:        "Recife",
		Zipcode:     "50000",
	}, location)
}

func TestReaderLocator_FallsBackToEnglishNames(t *testing.T) {
	locator := newReaderLocator(&fakeReader{record: cityRecord(t, `{
		"City": {"Names": {"en": "Lisbon"}},
		"Country": {"IsoCode": "PT", "Names": {"en": "Portugal"}},
		"Subdivisions": [{"Names": {"en": "Lisbon District"}}]
	}`)})

	location, err := locator.Lookup("85.10.20.30")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", location.City)
	assert.Equal(t, "Lisbon District", location.State)
}

func TestReaderLocator_UnknownAndPrivateAddresses(t *testing.T) {
	reader := &fakeReader{record: &geoip2.City{}}
	locator := newReaderLocator(reader)

	location, err := locator.Lookup("8.8.8.8")
	require.NoError(t, err)
	assert.Nil(t, location)

	for _, ip := range []string{"127.0.0.1", "10.1.2.3", "192.168.0.10", "::1"} {
		reader.asked = nil
		location, err := locator.Lookup(ip)
		require.NoError(t, err)
		assert.Nil(t, location, ip)
		assert.Nil(t, reader.asked, "private address %s must not hit the database", ip)
	}
}

func TestReaderLocator_Errors(t *testing.T) {
	locator := newReaderLocator(&fakeReader{err: errors.New("corrupt")})

	_, err := locator.Lookup("not-an-ip")
	assert.Error(t, err)

	_, err = locator.Lookup("8.8.8.8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
}

func TestReaderLocator_Close(t *testing.T) {
	reader := &fakeReader{}
	require.NoError(t, newReaderLocator(reader).Close())
	assert.True(t, reader.closed)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("/nonexistent/GeoLite2-City.mmdb")
	assert.Error(t, err)
}

func TestNoopLocator(t *testing.T) {
	location, err := NoopLocator{}.Lookup("8.8.8.8")
	assert.NoError(t, err)
	assert.Nil(t, location)
	assert.NoError(t, NoopLocator{}.Close())
}
