// Package config loads the settings shared by the console programs from
// flags, TEXTBOOKPKE_* environment variables and an optional
// textbook-pke.yml file in the data directory.
package config

import (
	"strings"

	"github.com/mr-shifu/textbook-pke/core/rsa"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable read by Load.
	EnvPrefix = "TEXTBOOKPKE"
	// ConfigName is the base name of the optional config file.
	ConfigName = "textbook-pke"
)

// ElGamalFiles names the files written by the ElGamal program.
type ElGamalFiles struct {
	PublicKeyFile  string
	PrivateKeyFile string
	ParamsFile     string
	CiphertextFile string
}

// RSAFiles names the files written by the RSA program.
type RSAFiles struct {
	PublicKeyFile  string
	PrivateKeyFile string
	CiphertextFile string
}

type Config struct {
	DataDir   string
	LogLevel  string
	LogOutput string
	RSABits   int

	ElGamal ElGamalFiles
	RSA     RSAFiles
}

// Default returns the settings of a run without flags, environment or
// config file.
func Default() *Config {
	return &Config{
		DataDir:   ".",
		LogLevel:  "error",
		LogOutput: "stderr",
		RSABits:   rsa.DefaultBits,
		ElGamal: ElGamalFiles{
			PublicKeyFile:  "public_key.txt",
			PrivateKeyFile: "private_key.txt",
			ParamsFile:     "elgamal_params.txt",
			CiphertextFile: "encrypted_message.cbor",
		},
		RSA: RSAFiles{
			PublicKeyFile:  "Public_key.json",
			PrivateKeyFile: "Private_key.json",
			CiphertextFile: "encrypted_text",
		},
	}
}

// Flags returns a flag set with the common flags registered.
func Flags(name string) *flag.FlagSet {
	def := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("dataDir", def.DataDir, "directory holding keys and ciphertexts")
	fs.String("logLevel", def.LogLevel, "log level (debug, info, warn, error)")
	fs.String("logOutput", def.LogOutput, "log output (stdout, stderr or filepath)")
	fs.Int("bits", def.RSABits, "bit length of each RSA prime")
	fs.SortFlags = false
	return fs
}

// Load resolves the configuration. Flags explicitly set on fs win over
// environment variables, which win over the config file. fs may be nil.
func Load(fs *flag.FlagSet) (*Config, error) {
	def := Default()

	pviper := viper.New()
	pviper.SetConfigName(ConfigName)
	pviper.SetConfigType("yml")
	pviper.SetEnvPrefix(EnvPrefix)
	pviper.AutomaticEnv()
	pviper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := map[string]interface{}{
		"dataDir":                def.DataDir,
		"logLevel":               def.LogLevel,
		"logOutput":              def.LogOutput,
		"bits":                   def.RSABits,
		"elgamal.publicKeyFile":  def.ElGamal.PublicKeyFile,
		"elgamal.privateKeyFile": def.ElGamal.PrivateKeyFile,
		"elgamal.paramsFile":     def.ElGamal.ParamsFile,
		"elgamal.ciphertextFile": def.ElGamal.CiphertextFile,
		"rsa.publicKeyFile":      def.RSA.PublicKeyFile,
		"rsa.privateKeyFile":     def.RSA.PrivateKeyFile,
		"rsa.ciphertextFile":     def.RSA.CiphertextFile,
	}
	for k, v := range defaults {
		pviper.SetDefault(k, v)
	}

	if fs != nil {
		for _, name := range []string{"dataDir", "logLevel", "logOutput", "bits"} {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := pviper.BindPFlag(name, f); err != nil {
				return nil, errors.WithMessagef(err, "config: cannot bind flag %s", name)
			}
		}
	}

	// the data directory decides where the config file is looked up
	pviper.AddConfigPath(pviper.GetString("dataDir"))
	if err := pviper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.WithMessage(err, "config: cannot read config file")
		}
	}

	cfg := &Config{
		DataDir:   pviper.GetString("dataDir"),
		LogLevel:  pviper.GetString("logLevel"),
		LogOutput: pviper.GetString("logOutput"),
		RSABits:   pviper.GetInt("bits"),
		ElGamal: ElGamalFiles{
			PublicKeyFile:  pviper.GetString("elgamal.publicKeyFile"),
			PrivateKeyFile: pviper.GetString("elgamal.privateKeyFile"),
			ParamsFile:     pviper.GetString("elgamal.paramsFile"),
			CiphertextFile: pviper.GetString("elgamal.ciphertextFile"),
		},
		RSA: RSAFiles{
			PublicKeyFile:  pviper.GetString("rsa.publicKeyFile"),
			PrivateKeyFile: pviper.GetString("rsa.privateKeyFile"),
			CiphertextFile: pviper.GetString("rsa.ciphertextFile"),
		},
	}
	if cfg.RSABits < 2 {
		return nil, errors.Errorf("config: invalid rsa bit length %d", cfg.RSABits)
	}
	return cfg, nil
}
