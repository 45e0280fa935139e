package tracing

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

// Operation identifies a traced callable in diagnostic output.
type Operation struct {
	// Name is the fully qualified name of the callable, e.g. "github.com/org/repo/pkg.(*Type).Method".
	Name string

	// File is the base name of the source file that defines the callable.
	File string
}

// Named builds an Operation from an explicit name and file, for callers that prefer to
// describe themselves rather than rely on function metadata.
func Named(name, file string) Operation {
	return Operation{Name: name, File: filepath.Base(file)}
}

// OperationOf describes a function value using the metadata the runtime keeps for it.  The
// name is the function's fully qualified symbol and the file is where its body is declared.
// Values that are not non-nil functions are described by their type alone.
func OperationOf(fn interface{}) Operation {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return Operation{Name: fmt.Sprintf("%T", fn)}
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return Operation{Name: v.Type().String()}
	}

	file, _ := f.FileLine(f.Entry())
	return Operation{
		// method values are reported under their generated "-fm" wrapper
		Name: strings.TrimSuffix(f.Name(), "-fm"),
		File: filepath.Base(file),
	}
}

// Metadata allows an Operation to enrich a go-kit logger
func (op Operation) Metadata() map[string]interface{} {
	return map[string]interface{}{
		OperationKey: op.Name,
		FileKey:      op.File,
	}
}

func (op Operation) String() string {
	return fmt.Sprintf("%s (%s)", op.Name, op.File)
}
