package pkginfo

const (
	// Name is the distribution name of the library.
	Name = "crue10"

	// Version is the library's own version.  Descriptors always report this value.
	Version = "0.1.0"

	// Author is the organization that maintains the library.
	Author = "CNR Engineering"
)
