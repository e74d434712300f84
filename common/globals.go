package common

// SableVersion is the current Sable toolchain version as a string.
const SableVersion string = "0.1.0"

// SableASTFileExt is the file extension for a serialized Sable AST file.
const SableASTFileExt string = ".sbast"
