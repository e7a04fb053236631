/*
Package vpath translates user supplied paths into canonical virtual paths and maps
those onto a host sandbox root without ever leaving it.

Resolution happens in two independent steps so every command shares the same
sandboxing logic:

  - Normalize (or NormalizeStrict) turns a raw path plus the current virtual
    directory into a VirtualPath: slash separated, rooted at "/", free of "." and
    ".." segments.
  - ResolveReal joins a VirtualPath onto the sandbox root and verifies, component
    by component, that the result is the root itself or one of its descendants.

Neither step touches the filesystem.

# Escape Policy

A ".." that would climb above "/" is either clamped to "/" (Clamp, the default)
or reported as ErrEscape (Reject). Both policies produce the same canonical form
for paths that stay inside the virtual root.
*/
package vpath
