// Package render turns an occupancy grid and an optional path into a
// human-readable map, either as plain text or drawn onto a tcell screen.
//
// Legend:
//
//	# blocked   . free   * path   S start   G goal
//
// When markers overlap, later ones in the list above win: goal over start
// over path over the cell's occupancy. Output is clipped to the configured
// maximum rows and columns (default 40×80).
package render
