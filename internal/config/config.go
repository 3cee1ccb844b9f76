package config

import (
	"log"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// ChainConfig holds the immutable on-chain addresses the gateway talks to.
type ChainConfig struct {
	// TokenAddress is the ERC-20 token the gateway serves metadata for
	// and swaps out of.
	TokenAddress string `yaml:"token_address"`
	// QuoteTokenAddress is the counter token of every pool and quote
	// (WBNB in the default configuration).
	QuoteTokenAddress string `yaml:"quote_token_address"`
	FactoryAddress    string `yaml:"factory_address"`
	QuoterAddress     string `yaml:"quoter_address"`
	RouterAddress     string `yaml:"router_address"`

	// FeeTiers are the factory fee tiers probed during pool discovery
	// and quoting, in hundredths of a bip.
	FeeTiers []uint32 `yaml:"fee_tiers"`
	// DefaultFeeTier is tried first when a quote request names no tier.
	DefaultFeeTier uint32 `yaml:"default_fee_tier"`

	TokenDecimals      uint8 `yaml:"token_decimals"`
	QuoteTokenDecimals uint8 `yaml:"quote_token_decimals"`
}

// Config holds application configuration loaded from file.
type Config struct {
	RPCURL            string        `yaml:"rpc_url"`
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`

	Chain ChainConfig `yaml:"chain"`
}

// Load reads the config from a YAML file path.
// Fails fatally if config is invalid or file is missing.
func Load(path string) Config {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open config file: os.Open: %v", err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Printf("failed to close config file: f.Close: %v", err)
		}
	}(f)

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("failed to parse config file: decoder.Decode: %v", err)
	}

	// Fallbacks
	const defaultTimeout = 5 * time.Second
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.GraceTimeout == 0 {
		cfg.GraceTimeout = defaultTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 8 * time.Second
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = defaultTimeout
	}
	if len(cfg.Chain.FeeTiers) == 0 {
		cfg.Chain.FeeTiers = []uint32{100, 500, 2500, 10000}
	}
	if cfg.Chain.DefaultFeeTier == 0 {
		cfg.Chain.DefaultFeeTier = 10000
	}
	if cfg.Chain.TokenDecimals == 0 {
		cfg.Chain.TokenDecimals = 18
	}
	if cfg.Chain.QuoteTokenDecimals == 0 {
		cfg.Chain.QuoteTokenDecimals = 18
	}

	if cfg.RPCURL == "" {
		log.Fatalf("rpc_url is required in config")
	}
	for name, addr := range map[string]string{
		"chain.token_address":       cfg.Chain.TokenAddress,
		"chain.quote_token_address": cfg.Chain.QuoteTokenAddress,
		"chain.factory_address":     cfg.Chain.FactoryAddress,
		"chain.quoter_address":      cfg.Chain.QuoterAddress,
		"chain.router_address":      cfg.Chain.RouterAddress,
	} {
		if !common.IsHexAddress(addr) {
			log.Fatalf("%s is missing or not a hex address: %q", name, addr)
		}
	}

	return cfg
}
