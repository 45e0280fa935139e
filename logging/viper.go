package logging

import (
	"github.com/spf13/viper"
)

// LoggingKey is the configuration key holding the Options, e.g. "log.level" or "log.file"
// in crue10info.yaml.  FromViper expects the subtree, not the root.
const LoggingKey = "log"

// Sub returns the LoggingKey subtree of v.  It returns nil when v is nil or has no such key,
// which FromViper accepts.
func Sub(v *viper.Viper) *viper.Viper {
	if v == nil {
		return nil
	}

	return v.Sub(LoggingKey)
}

// FromViper unmarshals Options from a logging subtree.  A nil subtree yields the zero Options,
// which logs errors only, to the console writer given to NewTo.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v == nil {
		return o, nil
	}

	if err := v.Unmarshal(o); err != nil {
		return nil, err
	}

	return o, nil
}
