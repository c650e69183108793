// Package render formats engine reports for presentation.
//
// The engine emits structured results only; everything about display
// strings, column widths, truncation, and the "—" placeholder for
// undefined values lives here. Two renderers share the same cell
// formatting: a fixed-width text table for the terminal and a PDF export
// carrying the mandatory disclaimer.
package render
