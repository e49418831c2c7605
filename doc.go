// Package colr composes terminal text with colors and styles while
// treating escape codes as zero-width metadata. A Colr chain collects
// styled segments and renders them into one escape-annotated string;
// string-like operations (index, slice, justify, trim) re-tokenize
// that string and never miscount embedded codes.
//
// Color specifiers accept basic names ("blue", "lightred"), extended
// names ("dodgerblue"), palette indices ("196"), and hex values
// ("#ff0000", "f00"). Conversion between palette indices, hex, and
// true color lives in the palette subpackage; raw escape sequence
// construction and scanning live in the ansi subpackage.
package colr
