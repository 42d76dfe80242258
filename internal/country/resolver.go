// Package country resolves country metadata from RestCountries.
package country

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"github.com/neexbeast/tripwise/internal/config"
	"github.com/neexbeast/tripwise/internal/metrics"
	"github.com/neexbeast/tripwise/internal/upstream"
)

// ErrNotFound is returned for every failed lookup: no match, upstream error or
// undecodable reply.
var ErrNotFound = errors.New("country not found")

const defaultStartOfWeek = "monday"

// Resolver looks up countries by name or ISO code.
type Resolver struct {
	baseURL string
	client  *upstream.Client
	log     *slog.Logger
}

// NewResolver constructs a Resolver from cfg.
func NewResolver(cfg config.Country, m *metrics.Metrics, log *slog.Logger) *Resolver {
	return &Resolver{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  upstream.New("restcountries", cfg.Timeout, m),
		log:     log,
	}
}

// ByName searches by country name; the first match is authoritative.
func (r *Resolver) ByName(ctx context.Context, name string) (*Info, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNotFound
	}

	info, err := r.fetch(ctx, "/name/"+url.PathEscape(name))
	if err != nil {
		r.log.Warn("country lookup by name failed", "name", name, "err", err)
		return nil, ErrNotFound
	}
	return info, nil
}

// ByCode looks up a country by its 2-letter ISO code.
func (r *Resolver) ByCode(ctx context.Context, code string) (*Info, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrNotFound
	}

	info, err := r.fetch(ctx, "/alpha/"+url.PathEscape(code))
	if err != nil {
		r.log.Warn("country lookup by code failed", "code", code, "err", err)
		return nil, ErrNotFound
	}
	return info, nil
}

func (r *Resolver) fetch(ctx context.Context, path string) (*Info, error) {
	var raw json.RawMessage
	if err := r.client.GetJSON(ctx, r.baseURL+path, nil, &raw); err != nil {
		return nil, err
	}

	rc, err := firstRecord(raw)
	if err != nil {
		return nil, err
	}
	return normalize(rc), nil
}

// firstRecord accepts either a list of records or a single record.
func firstRecord(raw json.RawMessage) (*restCountry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty response")
	}

	if trimmed[0] == '[' {
		var list []restCountry
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decoding country list: %w", err)
		}
		if len(list) == 0 {
			return nil, errors.New("no results")
		}
		return &list[0], nil
	}

	var one restCountry
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, fmt.Errorf("decoding country record: %w", err)
	}
	return &one, nil
}

func normalize(rc *restCountry) *Info {
	info := &Info{
		Name:          rc.Name.Common,
		OfficialName:  rc.Name.Official,
		Capital:       first(rc.Capital),
		Region:        rc.Region,
		Subregion:     rc.Subregion,
		Population:    rc.Population,
		Area:          rc.Area,
		Currency:      describeCurrencies(rc.Currencies),
		CurrenciesRaw: rc.Currencies,
		Languages:     languageNames(rc.Languages),
		Timezone:      first(rc.Timezones),
		TimezonesAll:  rc.Timezones,
		CallingCode:   rc.IDD.Root + first(rc.IDD.Suffixes),
		TLD:           first(rc.TLD),
		Borders:       rc.Borders,
		Flag:          rc.Flags.PNG,
		Maps:          rc.Maps.GoogleMaps,
		DrivingSide:   rc.Car.Side,
		StartOfWeek:   rc.StartOfWeek,
	}

	if info.CurrenciesRaw == nil {
		info.CurrenciesRaw = map[string]Currency{}
	}
	if info.TimezonesAll == nil {
		info.TimezonesAll = []string{}
	}
	if info.Borders == nil {
		info.Borders = []string{}
	}
	if info.StartOfWeek == "" {
		info.StartOfWeek = defaultStartOfWeek
	}
	return info
}

// describeCurrencies renders "Euro (EUR) - €" entries sorted by code.
func describeCurrencies(currencies map[string]Currency) string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		c := currencies[code]
		parts = append(parts, fmt.Sprintf("%s (%s) - %s", c.Name, code, c.Symbol))
	}
	return strings.Join(parts, ", ")
}

func languageNames(languages map[string]string) []string {
	keys := make([]string, 0, len(languages))
	for k := range languages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, languages[k])
	}
	return names
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
