package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	as "github.com/aluitink/ActivityStreams"
	"github.com/aluitink/ActivityStreams/internal/url"
)

// Config is the contents of the TOML configuration file.
//
//	[codec]
//	max_depth = 32
//	preserve_unknown = true
//	keep_empty = false
//
//	[mint]
//	base = "https://example.org/objects/"
type Config struct {
	Codec CodecConfig `toml:"codec"`
	Mint  MintConfig  `toml:"mint"`
}

// CodecConfig configures the codec.
type CodecConfig struct {
	MaxDepth        int   `toml:"max_depth"`
	PreserveUnknown *bool `toml:"preserve_unknown"`
	KeepEmpty       bool  `toml:"keep_empty"`
}

// MintConfig configures the identifiers created by the new command.
type MintConfig struct {
	Base string `toml:"base"`
}

// DefaultConfig returns the configuration used without a file.
func DefaultConfig() Config {
	return Config{
		Codec: CodecConfig{
			MaxDepth: as.DefaultMaxDepth,
		},
	}
}

// LoadConfig reads a configuration file. Settings missing from the file keep
// their defaults. It also returns the keys in the file it didn't recognise.
func LoadConfig(path string) (Config, []string, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if cfg.Codec.MaxDepth < 1 {
		return Config{}, nil, fmt.Errorf("load config %s: max_depth must be positive, got %d", path, cfg.Codec.MaxDepth)
	}

	if base := cfg.Mint.Base; base != "" && !url.IsIRI(base) {
		return Config{}, nil, fmt.Errorf("load config %s: mint base %q is not an absolute IRI", path, base)
	}

	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}

	return cfg, undecoded, nil
}

func (c CodecConfig) preserveUnknown() bool {
	return c.PreserveUnknown == nil || *c.PreserveUnknown
}

// Options turns the configuration into codec options.
func (c CodecConfig) Options() []as.CodecOption {
	return []as.CodecOption{
		as.WithMaxDepth(c.MaxDepth),
		as.WithPreserveUnknown(c.preserveUnknown()),
		as.WithKeepEmpty(c.KeepEmpty),
	}
}
