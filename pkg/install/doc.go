// Package install implements the ordered chain of font installation
// strategies.
//
// Four methods are tried in priority order, motivated by decreasing
// user friction: the Windows shell's native install action, a direct
// silent copy-and-register, a plain copy-and-register, and low-level
// font resource registration. Every strategy exposes the same attempt
// contract; both recoverable and fatal failures advance the chain,
// because the methods have independent privilege and elevation paths.
package install
