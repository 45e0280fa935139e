/*
Package caller describes the code that invoked a function, for use in log lines and diagnostics.

File and Function inspect the immediate caller's stack frame.  Class and Method describe the
caller's type from a receiver the caller passes in explicitly, so they work the same way whether
or not the method was inlined or called through an interface.  Context is an alternative for code
that would rather name itself outright.
*/
package caller
