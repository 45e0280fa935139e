/*
Package pkginfo describes this library for distribution: its name, version and author, the packages
it contains, the data directory shipped alongside them, and the dependencies listed in its
requirements file.
*/
package pkginfo
