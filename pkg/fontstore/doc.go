// Package fontstore abstracts the operating system font store: the
// platform font directory plus the font-database (registry) entries
// that make installed fonts visible to applications.
//
// The Store interface exposes the primitive operations the
// installation strategies need. The Windows implementation mutates
// %WINDIR%\Fonts and the HKLM Fonts registry key; the in-memory
// implementation backs tests and non-Windows builds.
//
// Registry implements duplicate detection on top of a Store. It is
// deliberately false-negative biased: any inconclusive probe answers
// "not installed", because over-reporting duplicates causes silent
// omissions.
package fontstore
