// Package filesystem provides filesystem implementations for strfind.
//
// This package contains implementations of the types.FS interface,
// backed by the OS or by afero, and ReadText, which reads a whole file
// and decodes it to UTF-8 text.
package filesystem
