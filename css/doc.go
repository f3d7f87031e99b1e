// Package css locates @font-face rules in a stylesheet produced by font
// splitting tools.
//
// Stylesheet is split into a leading comment header and rule text. The header
// ends with the first line containing "*/", that line included. Rule text is
// scanned for @font-face blocks which reference an asset with a "./" relative
// url. Blocks without such url are ignored and do not consume an index, so
// faces are numbered contiguously in the order of discovery.
//
// Two scanning modes exist. Line mode matches at most one block per line, a
// block has to be complete on that line. Block mode tokenizes the rule text
// and finds every block regardless of line structure.
//
// This is not a general CSS parser.
package css
