// Package parser converts raw attribute strings into typed property values.
//
// A Registry holds an ordered list of parsers and answers, for a target type,
// which parser converts into it: the first one whose Supports reports true.
// The built-in parsers are ordered from most to least specific, so the
// primitive parser (strings, numbers, booleans) is consulted last among them.
// Parsers added with Register come after the built-ins; Prepend is the
// explicit way to take precedence over them.
//
// A type no parser supports is not an error: the attribute is simply not
// bindable and the caller skips it.
package parser
