package vfsh

// Version is the release version, overridable at link time with
// -ldflags "-X github.com/aretw0/vfsh.Version=...".
var Version = "0.1.0"
