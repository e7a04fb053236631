// Package archive materializes a compressed archive into a sandbox directory.
//
// Supported formats are chosen by file extension: .zip, .tar, .tar.gz/.tgz,
// .tar.zst/.tzst and .tar.lz4. Entry names are resolved with the vpath package
// against the destination, so an entry can never be written outside of it.
// Symbolic links, hard links and device nodes are skipped: the extracted tree
// only ever contains directories and regular files.
package archive
