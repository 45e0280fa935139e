package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// NameFlag is the command-line flag that overrides the configuration file name searched for.
	NameFlag = "name"

	// FileFlag is the command-line flag that names a configuration file directly.
	FileFlag = "file"
)

// Option configures a viper instance
type Option func(*viper.Viper) error

func AddConfigPaths(paths ...string) Option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

func SetEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		return nil
	}
}

func SetConfigName(name string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigName(name)
		return nil
	}
}

func SetConfigFile(file string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigFile(file)
		return nil
	}
}

func AutomaticEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	return nil
}

func BindPFlags(fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return v.BindPFlags(fs)
	}
}

// BindConfigName uses the value of the given flag, if set, as the configuration file name.
func BindConfigName(fs *pflag.FlagSet, flag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(flag); f != nil {
			if configName := f.Value.String(); len(configName) > 0 {
				v.SetConfigName(configName)
			}
		}

		return nil
	}
}

// BindConfigFile uses the value of the given flag, if set, as the configuration file path.
func BindConfigFile(fs *pflag.FlagSet, flag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(flag); f != nil {
			if configFile := f.Value.String(); len(configFile) > 0 {
				v.SetConfigFile(configFile)
			}
		}

		return nil
	}
}

// Defaults supplies default values keyed by viper key
type Defaults map[string]interface{}

// ApplyDefaults sets each of the given defaults on the viper instance
func ApplyDefaults(d Defaults) Option {
	return func(v *viper.Viper) error {
		for key, value := range d {
			v.SetDefault(key, value)
		}

		return nil
	}
}

// StdOptions is the usual configuration for a command: files named after the application in
// /etc/<app>, $HOME/.<app> and the working directory, environment variables prefixed with the
// application name, and the given flags, with NameFlag and FileFlag able to override which file is read.
func StdOptions(applicationName string, fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		_, err := Configure(v,
			AddConfigPaths(
				fmt.Sprintf("/etc/%s", applicationName),
				fmt.Sprintf("$HOME/.%s", applicationName),
				".",
			),
			SetEnvPrefix(applicationName),
			AutomaticEnv,
			SetConfigName(applicationName),
			BindPFlags(fs),
			BindConfigName(fs, NameFlag),
			BindConfigFile(fs, FileFlag),
		)

		return err
	}
}

// New creates a viper instance configured with the given options
func New(o ...Option) (*viper.Viper, error) {
	return Configure(viper.New(), o...)
}

// Configure applies each option in turn, stopping at the first error
func Configure(v *viper.Viper, o ...Option) (*viper.Viper, error) {
	if v != nil {
		for _, f := range o {
			if err := f(v); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}

// Read loads the configuration file.  A file that cannot be found in any of the search paths
// is not an error, since flags and the environment may supply everything; an explicitly
// named file that is missing or malformed is.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}
