package logging

import (
	"github.com/go-kit/kit/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Contextual describes an object which can describe itself with metadata for logging.
// Implementing this interface allows code to carry logging context data across API
// boundaries without compromising encapsulation.
type Contextual interface {
	Metadata() map[string]interface{}
}

// appendSorted appends the entries of m to keyvals in key order, so that the same
// metadata always produces the same log line.
func appendSorted[V any](keyvals []interface{}, m map[string]V) []interface{} {
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		keyvals = append(keyvals, k, m[k])
	}

	return keyvals
}

// enrich is the helper function that emits contextual information into its logger argument.
func enrich(wither func(log.Logger, ...interface{}) log.Logger, logger log.Logger, objects []interface{}) log.Logger {
	var keyvals []interface{}
	for _, e := range objects {
		switch m := e.(type) {
		case Contextual:
			keyvals = appendSorted(keyvals, m.Metadata())

		case map[string]interface{}:
			keyvals = appendSorted(keyvals, m)

		case map[string]string:
			keyvals = appendSorted(keyvals, m)
		}
	}

	if len(keyvals) > 0 {
		return wither(logger, keyvals...)
	}

	return logger
}

// Enrich uses log.With to add contextual information to a logger.  The given set of objects are examined to see if they contain
// any metadata.  Objects that do not contain metadata are simply ignored.
//
// An object contains metadata if it implements Contextual, is a map[string]interface{}, or is a map[string]string.  In those cases,
// the key/value pairs are present in the returned logger, ordered by key within each object.
func Enrich(logger log.Logger, objects ...interface{}) log.Logger {
	return enrich(log.With, logger, objects)
}

// EnrichPrefix is like Enrich, except that it uses log.WithPrefix.
func EnrichPrefix(logger log.Logger, objects ...interface{}) log.Logger {
	return enrich(log.WithPrefix, logger, objects)
}
