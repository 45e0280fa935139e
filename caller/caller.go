package caller

import (
	"errors"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

// ErrNoReceiver is returned by Class and Method when the supplied receiver is nil.
var ErrNoReceiver = errors.New("no receiver supplied")

// FunctionSeparator joins the file base name and the function name in the output of Function.
const FunctionSeparator = `\`

// frame returns the program counter and file of the function skip levels above frame's caller.
func frame(skip int) (uintptr, string, bool) {
	pc, file, _, ok := runtime.Caller(skip + 1)
	return pc, file, ok
}

// funcName strips the package path and package name from a fully qualified runtime function name,
// leaving e.g. "Compute", "(*Model).Compute", or "Compute.func1".
func funcName(pc uintptr) string {
	f := runtime.FuncForPC(pc)
	if f == nil {
		return ""
	}

	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	return name
}

// File returns the full path of the source file of the function that called File.
// If the stack cannot be inspected, the empty string is returned.
func File() string {
	if _, file, ok := frame(1); ok {
		return file
	}

	return ""
}

// Function returns the base name of the calling function's source file joined to that
// function's name, e.g. `model.go\(*Model).Compute`.
func Function() string {
	pc, file, ok := frame(1)
	if !ok {
		return ""
	}

	return filepath.Base(file) + FunctionSeparator + funcName(pc)
}

// typeOf returns the named type behind receiver, looking through any pointers.
func typeOf(receiver interface{}) (reflect.Type, error) {
	if receiver == nil {
		return nil, ErrNoReceiver
	}

	t := reflect.TypeOf(receiver)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t, nil
}

func typeName(t reflect.Type) string {
	if name := t.Name(); len(name) > 0 {
		return name
	}

	return t.String()
}

// Class returns the name of the receiver's type, without its package.  Callers pass their own
// receiver, e.g. caller.Class(m) from inside a method on *Model yields "Model".
func Class(receiver interface{}) (string, error) {
	t, err := typeOf(receiver)
	if err != nil {
		return "", err
	}

	return typeName(t), nil
}

// Method returns "<Class>.<method>" for the calling method.  The class comes from receiver, as with
// Class, and the method is the caller's function name with any receiver qualifier removed.
func Method(receiver interface{}) (string, error) {
	t, err := typeOf(receiver)
	if err != nil {
		return "", err
	}

	pc, _, _ := frame(1)
	class := typeName(t)
	return class + "." + stripReceiver(funcName(pc), class), nil
}

// stripReceiver removes a leading "(*T)." or "T." from a function name.
func stripReceiver(name, class string) string {
	if strings.HasPrefix(name, "(") {
		if i := strings.Index(name, ")."); i >= 0 {
			return name[i+2:]
		}
	}

	return strings.TrimPrefix(name, class+".")
}
