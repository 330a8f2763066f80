package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"skycast/weather-widget/internal/openweather"
	"skycast/weather-widget/internal/session"
)

type MemoryTestSuite struct {
	suite.Suite
	memory *session.Memory
}

func (s *MemoryTestSuite) SetupTest() {
	s.memory = session.NewMemory(session.NewMemoryStore(5 * time.Minute))
}

func (s *MemoryTestSuite) TestLastLocationEmptySession() {
	_, found, err := s.memory.LastLocation()

	s.NoError(err)
	s.False(found)
}

func (s *MemoryTestSuite) TestRecordLookupByName() {
	s.NoError(s.memory.RecordLookup(openweather.ByName("Paris"), false))

	last, found, err := s.memory.LastLocation()

	s.NoError(err)
	s.True(found)
	s.Equal("Paris", last.City)
	s.False(last.FromGeolocation)
}

func (s *MemoryTestSuite) TestGeolocationLookupShadowsTypedCity() {
	s.NoError(s.memory.RecordLookup(openweather.ByName("Paris"), false))
	s.NoError(s.memory.RecordLookup(openweather.ByCoordinates(48.85, 2.35), true))

	last, found, err := s.memory.LastLocation()

	s.NoError(err)
	s.True(found)
	// The typed city is still remembered but geolocation takes precedence
	// on reload.
	s.Equal("Paris", last.City)
	s.True(last.FromGeolocation)
}

func (s *MemoryTestSuite) TestRecordHistoryIsIdempotent() {
	s.NoError(s.memory.RecordHistory("Paris"))
	s.NoError(s.memory.RecordHistory("Paris"))

	matches, err := s.memory.Search("par")

	s.NoError(err)
	s.Equal([]string{"Paris"}, matches)
}

func (s *MemoryTestSuite) TestRecordHistoryIsCaseSensitive() {
	s.NoError(s.memory.RecordHistory("Paris"))
	s.NoError(s.memory.RecordHistory("paris"))

	matches, err := s.memory.Search("paris")

	s.NoError(err)
	s.Equal([]string{"Paris", "paris"}, matches)
}

func (s *MemoryTestSuite) TestSearchMatchesSubstringsCaseInsensitively() {
	s.NoError(s.memory.RecordHistory("New York"))
	s.NoError(s.memory.RecordHistory("Newcastle"))
	s.NoError(s.memory.RecordHistory("Tokyo"))

	matches, err := s.memory.Search("NEW")

	s.NoError(err)
	s.Equal([]string{"New York", "Newcastle"}, matches)
}

func (s *MemoryTestSuite) TestSearchBlankPrefix() {
	s.NoError(s.memory.RecordHistory("Paris"))

	matches, err := s.memory.Search("   ")

	s.NoError(err)
	s.Empty(matches)
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(MemoryTestSuite))
}
