package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalogue is the YAML document accepted by the seed command.
type Catalogue struct {
	Events []CatalogueEvent `yaml:"events"`
}

// CatalogueEvent is one event entry. Slug is derived from Title when empty.
type CatalogueEvent struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	Overview    string   `yaml:"overview"`
	Image       string   `yaml:"image"`
	Venue       string   `yaml:"venue"`
	Location    string   `yaml:"location"`
	Date        string   `yaml:"date"`
	Time        string   `yaml:"time"`
	Mode        string   `yaml:"mode"`
	Audience    string   `yaml:"audience"`
	Agenda      []string `yaml:"agenda"`
	Organizer   string   `yaml:"organizer"`
	Tags        []string `yaml:"tags"`
}

// CatalogueFetcher loads a catalogue (or a test double).
type CatalogueFetcher interface {
	Fetch(ctx context.Context, source string) (*Catalogue, error)
}

// ParseCatalogue decodes a YAML catalogue. Unknown keys are rejected.
func ParseCatalogue(r io.Reader) (*Catalogue, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalogue
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return &c, nil
		}
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}
	return &c, nil
}

type catalogueFetcher struct {
	client *http.Client
}

// NewCatalogueFetcher returns a fetcher reading http(s) URLs with client and anything else from disk.
func NewCatalogueFetcher(client *http.Client) CatalogueFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &catalogueFetcher{client: client}
}

func (f *catalogueFetcher) Fetch(ctx context.Context, source string) (*Catalogue, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return f.fetchURL(ctx, source)
	}
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalogue: %w", err)
	}
	defer file.Close()
	return ParseCatalogue(file)
}

func (f *catalogueFetcher) fetchURL(ctx context.Context, url string) (*Catalogue, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalogue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalogue source returned status: %d", resp.StatusCode)
	}
	return ParseCatalogue(resp.Body)
}
