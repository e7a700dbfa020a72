package flt

// Version is the semantic version of the package.
const Version = "0.1.0"
