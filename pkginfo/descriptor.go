package pkginfo

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/CNR-Engineering/Crue10-tools-sub001/logging"
	"github.com/ugorji/go/codec"
)

const (
	// DefaultRequirementsFile is the requirements file read by Load when Options does not name one.
	DefaultRequirementsFile = "requirements.txt"

	// DefaultDataDir is the package data directory used by Load when Options does not name one.
	DefaultDataDir = "data"
)

// Supported encodings for Descriptor.Encode
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Descriptor is the distribution metadata of the library.
type Descriptor struct {
	Name         string   `codec:"name"`
	Version      string   `codec:"version"`
	Author       string   `codec:"author"`
	Packages     []string `codec:"packages"`
	DataDir      string   `codec:"dataDir"`
	DataFiles    []string `codec:"dataFiles,omitempty"`
	Requirements []string `codec:"requirements"`
}

// Options controls how Load assembles a Descriptor.
type Options struct {
	// RequirementsFile is the path, within the file system passed to Load, of the requirements file.
	// If unset, DefaultRequirementsFile is used.
	RequirementsFile string `json:"requirements"`

	// DataDir is the path, within the file system passed to Load, of the package data directory.
	// If unset, DefaultDataDir is used.
	DataDir string `json:"data"`
}

func (o *Options) requirementsFile() string {
	if o != nil && len(o.RequirementsFile) > 0 {
		return o.RequirementsFile
	}

	return DefaultRequirementsFile
}

func (o *Options) dataDir() string {
	if o != nil && len(o.DataDir) > 0 {
		return o.DataDir
	}

	return DefaultDataDir
}

// Load builds the Descriptor for the source tree in fsys.  The requirements file must exist; the
// data directory need not.  The options may be nil.  Debug output goes to logging.GetLogger(ctx),
// and Load stops early if ctx is done.
func Load(ctx context.Context, fsys fs.FS, o *Options) (*Descriptor, error) {
	f, err := fsys.Open(o.requirementsFile())
	if err != nil {
		return nil, err
	}

	defer f.Close()
	requirements, err := ReadRequirements(f)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", o.requirementsFile(), err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	packages, err := DiscoverPackages(fsys)
	if err != nil {
		return nil, err
	}

	dataFiles, err := ListData(fsys, o.dataDir())
	if err != nil {
		return nil, err
	}

	logging.Debug(logging.GetLogger(ctx)).Log(
		logging.MessageKey(), "loaded package descriptor",
		"packages", len(packages),
		"dataFiles", len(dataFiles),
		"requirements", len(requirements),
	)

	return &Descriptor{
		Name:         Name,
		Version:      Version,
		Author:       Author,
		Packages:     packages,
		DataDir:      o.dataDir(),
		DataFiles:    dataFiles,
		Requirements: requirements,
	}, nil
}

func newHandle(format string) (codec.Handle, error) {
	switch format {
	case FormatJSON, "":
		h := new(codec.JsonHandle)
		h.Indent = 2
		return h, nil

	case FormatMsgpack:
		return new(codec.MsgpackHandle), nil

	default:
		return nil, fmt.Errorf("unsupported descriptor format: %s", format)
	}
}

// Encode writes the descriptor to w in the given format, either FormatJSON or FormatMsgpack.
// An empty format means FormatJSON.
func (d *Descriptor) Encode(w io.Writer, format string) error {
	h, err := newHandle(format)
	if err != nil {
		return err
	}

	return codec.NewEncoder(w, h).Encode(d)
}

// Decode reads a descriptor previously written by Encode in the same format.
func Decode(r io.Reader, format string) (*Descriptor, error) {
	h, err := newHandle(format)
	if err != nil {
		return nil, err
	}

	d := new(Descriptor)
	if err := codec.NewDecoder(r, h).Decode(d); err != nil {
		return nil, err
	}

	return d, nil
}
