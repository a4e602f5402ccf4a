package geoip

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

//go:generate mockgen -destination=../mocks/mock_geoip.go -package=pkgmocks github.com/pixeltrack/pixeltrack/pkg/geoip Locator

// Location is the geographic data attached to tracked events
type Location struct {
	Country     string
	CountryCode string
	State       string
	City        string
	Zipcode     string
}

// Locator resolves an IP address to a Location.
// A nil Location with a nil error means the address is unknown.
type Locator interface {
	Lookup(ip string) (*Location, error)
	Close() error
}

type cityReader interface {
	City(ip net.IP) (*geoip2.City, error)
	Close() error
}

// ReaderLocator reads a MaxMind GeoIP2 / GeoLite2 City database
type ReaderLocator struct {
	reader    cityReader
	languages []string
}

// Open loads the mmdb file at path
func Open(path string) (*ReaderLocator, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geoip database: %w", err)
	}
	return newReaderLocator(reader), nil
}

func newReaderLocator(reader cityReader) *ReaderLocator {
	return &ReaderLocator{
		reader:    reader,
		languages: []string{"pt-BR", "en"},
	}
}

func (l *ReaderLocator) Lookup(ip string) (*Location, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, fmt.Errorf("invalid IP address: %q", ip)
	}
	if parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return nil, nil
	}

	record, err := l.reader.City(parsed)
	if err != nil {
		return nil, fmt.Errorf("geoip lookup failed: %w", err)
	}
	return l.fromRecord(record), nil
}

func (l *ReaderLocator) fromRecord(record *geoip2.City) *Location {
	if record == nil || record.Country.IsoCode == "" {
		return nil
	}

	location := &Location{
		Country:     l.name(record.Country.Names),
		CountryCode: record.Country.IsoCode,
		City:        l.name(record.City.Names),
		Zipcode:     record.Postal.Code,
	}
	if len(record.Subdivisions) > 0 {
		location.State = record.Subdivisions[0].IsoCode
		if location.State == "" {
			location.State = l.name(record.Subdivisions[0].Names)
		}
	}
	return location
}

func (l *ReaderLocator) name(names map[string]string) string {
	for _, lang := range l.languages {
		if v, ok := names[lang]; ok && v != "" {
			return v
		}
	}
	return ""
}

func (l *ReaderLocator) Close() error {
	return l.reader.Close()
}

// NoopLocator is used when no database is configured
type NoopLocator struct{}

func (NoopLocator) Lookup(string) (*Location, error) { return nil, nil }

func (NoopLocator) Close() error { return nil }
