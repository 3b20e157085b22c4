package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/prophnet/logging"
	"github.com/katalvlaran/prophnet/propagate"
	"github.com/katalvlaran/prophnet/runner"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "PROPH"
	// DefaultSection is the config file section holding the run keys.
	DefaultSection = "run"
	// DefaultEnvFile is loaded when present and no other file was chosen.
	DefaultEnvFile = ".env"
)

// Recognized keys.
const (
	KeyDataPath     = "data_path"
	KeyCorrFunction = "corr_function"
	KeyMatFile      = "matfile"
	KeyQIndex       = "qindex"
	KeyQName        = "qname"
	KeyOut          = "out"
	KeyN            = "n"
	KeyMemSave      = "memsave"
	KeyProfile      = "profile"
	KeyAlpha        = "alpha"
	KeyTol          = "tol"
	KeyMaxIter      = "max_iter"
	KeyLogLevel     = "log_level"
)

var (
	// ErrConfigFile is returned when the config or env file cannot be read.
	ErrConfigFile = errors.New("config: cannot read file")
	// ErrInvalid is returned when a resolved value is malformed or out of range.
	ErrInvalid = errors.New("config: invalid value")
)

var defaults = map[string]any{
	KeyDataPath:     ".",
	KeyCorrFunction: propagate.PolicyPearson,
	KeyMatFile:      "",
	KeyQIndex:       "",
	KeyQName:        "",
	KeyOut:          "",
	KeyN:            10,
	KeyMemSave:      false,
	KeyProfile:      false,
	KeyAlpha:        0.0,
	KeyTol:          propagate.DefaultTol,
	KeyMaxIter:      propagate.DefaultMaxIter,
	KeyLogLevel:     "info",
}

// Settings is the resolved configuration.
type Settings struct {
	Run      runner.Config
	LogLevel string `validate:"oneof=debug info warn error"`

	// Diffusion parameters of the propagation engine.
	Alpha   float64 `validate:"gte=0,lt=1"`
	Tol     float64 `validate:"gte=0"`
	MaxIter int     `validate:"gte=0"`
}

// EngineOptions returns the propagate options the settings describe.
func (s Settings) EngineOptions() []propagate.Option {
	return []propagate.Option{propagate.WithDiffusion(s.Alpha, s.MaxIter, s.Tol)}
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	section string
	envFile string
	flags   *pflag.FlagSet
	bind    map[string]string // key → flag name
	logger  logging.Logger
}

// WithSection reads the keys from section instead of DefaultSection.
func WithSection(name string) Option {
	return func(l *loader) {
		if name != "" {
			l.section = name
		}
	}
}

// WithEnvFile loads path instead of DefaultEnvFile. A missing DefaultEnvFile
// is ignored; a missing explicit file is an error.
func WithEnvFile(path string) Option {
	return func(l *loader) { l.envFile = path }
}

// WithFlags binds flags of fs to keys. bind maps key → flag name; flags
// absent from fs are skipped.
func WithFlags(fs *pflag.FlagSet, bind map[string]string) Option {
	return func(l *loader) {
		l.flags = fs
		l.bind = bind
	}
}

// WithLogger reports skipped sources to lg.
func WithLogger(lg logging.Logger) Option {
	return func(l *loader) { l.logger = logging.OrNop(lg) }
}

// Load resolves Settings from the config file at path ("" for none), the
// environment and the bound flags.
func Load(path string, opts ...Option) (Settings, error) {
	l := &loader{section: DefaultSection, logger: logging.Nop()}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.loadEnvFile(); err != nil {
		return Settings{}, err
	}

	v := viper.New()
	for key, def := range defaults {
		v.SetDefault(l.key(key), def)
		if err := v.BindEnv(l.key(key), EnvPrefix+"_"+strings.ToUpper(key)); err != nil {
			return Settings{}, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
		}
	}
	if l.flags != nil {
		for key, name := range l.bind {
			f := l.flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(l.key(key), f); err != nil {
				return Settings{}, fmt.Errorf("%w: flag --%s: %v", ErrInvalid, name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if ext := strings.TrimPrefix(filepath.Ext(path), "."); !slices.Contains(viper.SupportedExts, ext) {
			v.SetConfigType("ini")
		}
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("%w: %s: %v", ErrConfigFile, path, err)
		}
	}

	s, err := l.decode(v)
	if err != nil {
		return Settings{}, err
	}
	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (l *loader) key(k string) string { return l.section + "." + k }

func (l *loader) loadEnvFile() error {
	path := l.envFile
	if path == "" {
		path = DefaultEnvFile
	}
	err := godotenv.Load(path)
	switch {
	case err == nil:
		l.logger.Debug("env file loaded", "path", path)
	case l.envFile == "" && errors.Is(err, os.ErrNotExist):
		l.logger.Debug("no env file found, using process environment", "path", path)
	default:
		return fmt.Errorf("%w: %s: %v", ErrConfigFile, path, err)
	}
	return nil
}

func (l *loader) decode(v *viper.Viper) (Settings, error) {
	s := Settings{
		Run: runner.Config{
			DataPath:     v.GetString(l.key(KeyDataPath)),
			CorrFunction: v.GetString(l.key(KeyCorrFunction)),
			MatFile:      v.GetString(l.key(KeyMatFile)),
			QName:        strings.TrimSpace(v.GetString(l.key(KeyQName))),
			Out:          v.GetString(l.key(KeyOut)),
		},
		LogLevel: strings.ToLower(v.GetString(l.key(KeyLogLevel))),
	}

	var err error
	if raw := strings.TrimSpace(v.GetString(l.key(KeyQIndex))); raw != "" {
		q, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return s, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, KeyQIndex, raw)
		}
		s.Run.QIndex = &q
	}
	if s.Run.N, err = intValue(v, l.key(KeyN)); err != nil {
		return s, err
	}
	if s.MaxIter, err = intValue(v, l.key(KeyMaxIter)); err != nil {
		return s, err
	}
	if s.Run.MemSave, err = boolValue(v, l.key(KeyMemSave)); err != nil {
		return s, err
	}
	if s.Run.Profile, err = boolValue(v, l.key(KeyProfile)); err != nil {
		return s, err
	}
	if s.Alpha, err = floatValue(v, l.key(KeyAlpha)); err != nil {
		return s, err
	}
	if s.Tol, err = floatValue(v, l.key(KeyTol)); err != nil {
		return s, err
	}
	return s, nil
}

// The viper getters turn malformed input into zero values; these parse the
// raw value so a typo is reported instead.

func intValue(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, raw)
	}
	return i, nil
}

func floatValue(v *viper.Viper, key string) (float64, error) {
	raw := strings.TrimSpace(v.GetString(key))
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, key, raw)
	}
	return f, nil
}

// boolValue also accepts the capitalized True/False spellings.
func boolValue(v *viper.Viper, key string) (bool, error) {
	raw := strings.TrimSpace(v.GetString(key))
	b, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, key, raw)
	}
	return b, nil
}

var validate = validator.New()

// Validate checks ranges and enumerations of s.
func Validate(s Settings) error {
	if err := validate.Struct(s); err != nil {
		var fields validator.ValidationErrors
		if !errors.As(err, &fields) {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		msgs := make([]string, 0, len(fields))
		for _, fe := range fields {
			msgs = append(msgs, fmt.Sprintf("%s=%v fails %s%s", fe.Namespace(), fe.Value(), fe.Tag(), param(fe.Param())))
		}
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}
	return nil
}

func param(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}
