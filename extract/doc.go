// Package extract decodes JSON documents, selects values from them using
// JSONPath expressions, and renders those values as plain text. Object members
// keep their document order throughout.
//
// Strings are trimmed and unquoted, numbers and booleans use their canonical
// text form, and objects and arrays are rendered as indented JSON, or compact
// JSON if the indented form is too long. Multiple matches are joined with a
// comma and a space.
package extract
