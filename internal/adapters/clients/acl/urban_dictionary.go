package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen/slangdict/internal/adapters/clients"
	"github.com/jsamuelsen/slangdict/internal/domain"
	"github.com/jsamuelsen/slangdict/internal/platform/config"
	"github.com/jsamuelsen/slangdict/internal/platform/logging"
)

// definePath is the lookup endpoint of the Urban Dictionary API.
const definePath = "/define"

// UrbanDictionaryClientConfig contains configuration for the dictionary client.
type UrbanDictionaryClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the RapidAPI endpoint and its
	// AuthFunc should inject the RapidAPI headers.
	Client *clients.Client

	// ServiceName identifies the provider in errors and health checks.
	ServiceName string

	// APIKey is the configured RapidAPI key. When empty or still the
	// placeholder, Define refuses to issue requests.
	APIKey string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// UrbanDictionaryClient implements ports.DefinitionProvider using the
// Urban Dictionary API behind RapidAPI. It translates external API
// responses to domain types and never lets external DTOs escape.
type UrbanDictionaryClient struct {
	BaseAdapter
	apiKey string
	logger *slog.Logger
}

// NewUrbanDictionaryClient creates a new dictionary client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewUrbanDictionaryClient(cfg UrbanDictionaryClientConfig) *UrbanDictionaryClient {
	if cfg.Client == nil {
		panic("UrbanDictionaryClient: Client is required")
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "urban-dictionary"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &UrbanDictionaryClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, serviceName),
		apiKey:      cfg.APIKey,
		logger:      logger,
	}
}

// defineResponse is the external DTO from the Urban Dictionary API.
// This is an internal type - never exposed outside the ACL.
type defineResponse struct {
	List []definitionEntry `json:"list"`
}

// definitionEntry is one definition in the external response. All fields are
// optional; missing values fall back to zero values during translation.
type definitionEntry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	Author     string `json:"author"`
	ThumbsUp   int    `json:"thumbs_up"`
	ThumbsDown int    `json:"thumbs_down"`
}

// Define looks up all definitions for the given term.
// Implements ports.DefinitionProvider.
//
// When the API key is absent or still the placeholder, it returns
// domain.ErrNotConfigured without issuing any network request. An empty
// result list is a successful lookup, not an error.
func (c *UrbanDictionaryClient) Define(ctx context.Context, term string) ([]domain.Definition, error) {
	if err := ValidateRequired(term, "term"); err != nil {
		return nil, err
	}

	if !c.keyConfigured() {
		c.logger.WarnContext(ctx, "lookup refused: api key not configured")
		return nil, domain.NewConfigurationError(c.ServiceName(), "rapidapi key is not set")
	}

	query := url.Values{"term": []string{term}}
	path := definePath + "?" + query.Encode()

	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", definePath))
	c.logger.DebugContext(ctx, "looking up term", slog.String("term", term))

	body, err := c.Get(ctx, path, "define term")
	if err != nil {
		return nil, err
	}

	external, err := DecodeResponse[defineResponse](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	translated, err := TranslateSlice(external.List, translateDefinition)
	if err != nil {
		return nil, err
	}

	definitions := make([]domain.Definition, 0, len(translated))
	for _, d := range translated {
		definitions = append(definitions, *d)
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated external DTOs to domain",
		slog.String("term", term),
		slog.Int("count", len(definitions)))

	return definitions, nil
}

// translateDefinition converts one external entry to a domain Definition.
// Translation is permissive: absent fields become zero values rather than
// errors, so a sparse entry still renders.
func translateDefinition(ext *definitionEntry) (*domain.Definition, error) {
	return &domain.Definition{
		Word:       ext.Word,
		Meaning:    ext.Definition,
		Example:    ext.Example,
		Author:     ext.Author,
		ThumbsUp:   ext.ThumbsUp,
		ThumbsDown: ext.ThumbsDown,
	}, nil
}

// keyConfigured reports whether a usable RapidAPI key was supplied.
func (c *UrbanDictionaryClient) keyConfigured() bool {
	return c.apiKey != "" && c.apiKey != config.PlaceholderAPIKey
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *UrbanDictionaryClient) Name() string {
	return c.ServiceName()
}

// Check performs a health check against the lookup endpoint.
// Implements ports.HealthChecker.
//
// An unconfigured key reports unhealthy without contacting the provider,
// so operators see the misconfiguration on the readiness endpoint.
func (c *UrbanDictionaryClient) Check(ctx context.Context) error {
	if !c.keyConfigured() {
		return domain.NewConfigurationError(c.ServiceName(), "rapidapi key is not set")
	}

	resp, err := c.Client().Get(ctx, definePath+"?term=health")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dictionary API returned status %d", resp.StatusCode)
	}

	return nil
}
