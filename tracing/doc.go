/*
Package tracing reports failed calls.  The key type in this package is Tracer, which wraps an
arbitrary function so that any error or panic it produces is described by exactly one diagnostic
line before being handed back to the caller unchanged:

	Exception '<qualified function name>' (<source file base name>): <error repr>

Successful calls produce no output.  Each traced call is timed with a Span, which also feeds the
optional structured log entry and failure counter attached to a Tracer.
*/
package tracing
