package theme

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// GeneratedTheme is the full output of GenerateTheme.
type GeneratedTheme struct {
	Config         *ThemeConfig    `json:"config"`
	Tokens         []*ColorToken   `json:"tokens"`
	CSS            string          `json:"css"`
	TailwindConfig *TailwindConfig `json:"tailwindConfig"`
	FigmaTokens    *FigmaTokens    `json:"figmaTokens"`
}

// GenerateTheme validates config and renders every artifact.
func GenerateTheme(config *ThemeConfig) (*GeneratedTheme, error) {
	if config == nil {
		return nil, fmt.Errorf("generate theme: nil config")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("generate theme: %w", err)
	}

	tokens := make([]*ColorToken, 0, config.Colors.Len())
	var genErr error
	config.Colors.Each(func(name, value string) {
		if genErr != nil {
			return
		}
		t, err := GenerateColorVariants(value, name)
		if err != nil {
			genErr = fmt.Errorf("color %s: %w", name, err)
			return
		}
		tokens = append(tokens, t)
	})
	if genErr != nil {
		return nil, genErr
	}

	return &GeneratedTheme{
		Config:         config,
		Tokens:         tokens,
		CSS:            GenerateCSS(tokens, config),
		TailwindConfig: GenerateTailwindConfig(tokens, config),
		FigmaTokens:    GenerateFigmaTokens(tokens, config),
	}, nil
}

// DefaultCacheSize is the number of generated themes a Generator keeps.
const DefaultCacheSize = 16

// Generator memoizes GenerateTheme by the config's canonical JSON.
// Returned themes are shared between callers and must not be modified.
type Generator struct {
	cache  *lru.Cache[string, *GeneratedTheme]
	logger *slog.Logger
}

// NewGenerator creates a Generator. A non-positive size uses DefaultCacheSize.
func NewGenerator(size int, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *GeneratedTheme](size)
	if err != nil {
		panic(fmt.Sprintf("theme: lru cache: %v", err))
	}
	return &Generator{cache: cache, logger: logger}
}

// Generate returns the cached theme for config, generating it on a miss.
func (g *Generator) Generate(config *ThemeConfig) (*GeneratedTheme, error) {
	key, err := configKey(config)
	if err != nil {
		return nil, err
	}
	if cached, ok := g.cache.Get(key); ok {
		g.logger.Debug("theme cache hit", "name", config.Name, "key", key[:12])
		return cached, nil
	}

	theme, err := GenerateTheme(config)
	if err != nil {
		g.logger.Warn("theme generation failed", "name", configName(config), "error", err)
		return nil, err
	}
	g.cache.Add(key, theme)
	g.logger.Info("theme generated",
		"name", config.Name,
		"colors", len(theme.Tokens),
		"dark_mode", config.DarkMode,
	)
	return theme, nil
}

// Len returns the number of cached themes.
func (g *Generator) Len() int {
	return g.cache.Len()
}

func configKey(config *ThemeConfig) (string, error) {
	data, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("theme cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func configName(config *ThemeConfig) string {
	if config == nil {
		return ""
	}
	return config.Name
}
