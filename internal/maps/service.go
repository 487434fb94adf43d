// Package maps backs the booking form's address autocomplete and tracks
// whether an address came from a picked suggestion or free-typed text.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dumpster_booking_backend/platform/logger"
)

const nominatimURL = "https://nominatim.openstreetmap.org/search"

// VerifiedBy labels how an address came to count as selected.
const (
	VerifiedBySelection = "selection"
	VerifiedByHeuristic = "heuristic"
)

type Service struct {
	client        *http.Client
	log           *logger.Logger
	lookupEnabled bool
}

func NewService(log *logger.Logger, lookupEnabled bool) *Service {
	return &Service{
		client:        &http.Client{Timeout: 5 * time.Second},
		log:           log,
		lookupEnabled: lookupEnabled,
	}
}

// LookupEnabled reports whether the autocomplete backend is available.
func (s *Service) LookupEnabled() bool {
	return s.lookupEnabled
}

// SearchAddress queries Nominatim for US address suggestions.
func (s *Service) SearchAddress(ctx context.Context, query string) ([]AddressSuggestion, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("addressdetails", "1")
	params.Add("limit", "5")
	params.Add("countrycodes", "us")

	reqURL := fmt.Sprintf("%s?%s", nominatimURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "PresidentialDumpsters/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("nominatim request failed", "error", err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.log.Error("nominatim upstream error", "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var rawResults []nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&rawResults); err != nil {
		s.log.Error("failed to decode nominatim payload", "error", err)
		return nil, err
	}

	suggestions := make([]AddressSuggestion, 0, len(rawResults))
	for _, raw := range rawResults {
		suggestion, ok := buildSuggestion(raw)
		if !ok {
			continue
		}

		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

// ResolveSelection decides the selection flag for an address update.
// When the lookup backend is up, only an actual picked suggestion counts.
// When it is down, the structural LooksComplete check stands in for
// selection tracking, mirroring the form's degraded manual-entry mode.
//
// The returned label is VerifiedBySelection, VerifiedByHeuristic, or ""
// when the address does not count as selected.
func (s *Service) ResolveSelection(address string, claimedSelected *bool) (bool, string) {
	if s.lookupEnabled {
		if claimedSelected != nil && *claimedSelected {
			return true, VerifiedBySelection
		}
		return false, ""
	}

	if LooksComplete(address) {
		return true, VerifiedByHeuristic
	}
	return false, ""
}

// LooksComplete is the fallback heuristic for a hand-typed address:
// at least two comma-separated parts and longer than 15 characters.
// It is a weak proxy for a picked suggestion, not a validation replacement.
func LooksComplete(address string) bool {
	return len(strings.Split(address, ",")) >= 2 && len(address) > 15
}

func buildSuggestion(raw nominatimResponse) (AddressSuggestion, bool) {
	if raw.Address.Road == "" {
		return AddressSuggestion{}, false
	}

	city := pickCity(raw.Address)
	if city == "" {
		return AddressSuggestion{}, false
	}

	suggestion := AddressSuggestion{
		Street:      raw.Address.Road,
		HouseNumber: raw.Address.HouseNumber,
		ZipCode:     raw.Address.Postcode,
		City:        city,
		State:       raw.Address.State,
		Lat:         raw.Lat,
		Lon:         raw.Lon,
	}

	suggestion.Label = buildLabel(suggestion)

	return suggestion, true
}

func pickCity(address nominatimAddress) string {
	if address.City != "" {
		return address.City
	}
	if address.Town != "" {
		return address.Town
	}
	if address.Village != "" {
		return address.Village
	}
	if address.Municipality != "" {
		return address.Municipality
	}
	return address.Hamlet
}

func buildLabel(suggestion AddressSuggestion) string {
	street := suggestion.Street
	if suggestion.HouseNumber != "" {
		street = suggestion.HouseNumber + " " + street
	}

	parts := []string{street}
	locality := suggestion.City
	if suggestion.State != "" {
		locality = locality + ", " + suggestion.State
	}
	if suggestion.ZipCode != "" {
		locality = locality + " " + suggestion.ZipCode
	}
	parts = append(parts, locality)

	return strings.Join(parts, ", ")
}
