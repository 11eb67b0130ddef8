package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/BurntSushi/torsmatch/matching"
	"github.com/BurntSushi/torsmatch/torsion"
)

// EnvPrefix is the prefix of environment variables that override options,
// e.g., MCQ_THRESHOLD or MCQ_MIN_LENGTH.
const EnvPrefix = "MCQ"

// Options are the settings shared by the command line tools. They may come
// from flags, environment variables or a YAML configuration file, in that
// order of precedence.
type Options struct {
	Matcher   matching.Config `mapstructure:",squash"`
	Angles    string          `mapstructure:"angles"`
	Jobs      int             `mapstructure:"jobs"`
	Timeout   time.Duration   `mapstructure:"timeout"`
	LogLevel  string          `mapstructure:"log-level"`
	LogFormat string          `mapstructure:"log-format"`
}

// NewViper returns a viper instance with every option's default set and
// environment variables bound.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	def := matching.DefaultConfig()
	v.SetDefault("threshold", def.Threshold)
	v.SetDefault("min-length", def.MinLength)
	v.SetDefault("gap-tolerance", def.GapTolerance)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("angles", "main")
	v.SetDefault("jobs", 1)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "console")
	return v
}

// MatcherFlags adds the flags controlling fragment matching.
func MatcherFlags(flags *pflag.FlagSet) {
	def := matching.DefaultConfig()
	flags.Float64("threshold", def.Threshold,
		"The largest per-residue MCQ, in degrees, of corresponding residues.")
	flags.Int("min-length", def.MinLength,
		"The fewest residues a fragment may have.")
	flags.Int("gap-tolerance", def.GapTolerance,
		"How many consecutive dissimilar residues a fragment may bridge.")
	flags.Int("workers", def.Workers,
		"Goroutines computing each distance matrix. 0 means one per CPU.")
	flags.String("angles", "main",
		"Comma separated torsion angles to compare. 'main', 'protein' and "+
			"'rna' name the default sets.")
}

// LoadOptions reads a configuration file (if path is not empty) into v and
// decodes every option. The matcher configuration is validated.
func LoadOptions(v *viper.Viper, path string) (Options, error) {
	var opts Options
	if len(path) > 0 {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return opts, fmt.Errorf("Could not read config file '%s': %s", path, err)
		}
	}
	if err := v.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("Could not decode options: %s", err)
	}
	if err := opts.Matcher.Validate(); err != nil {
		return opts, err
	}
	if opts.Jobs < 1 {
		return opts, fmt.Errorf("The number of jobs must be positive, got %d.",
			opts.Jobs)
	}
	return opts, nil
}

// AngleTypes resolves the Angles option with the catalog given.
func (opts Options) AngleTypes(cat torsion.Catalog) ([]torsion.AngleType, error) {
	return cat.ParseList(opts.Angles)
}
