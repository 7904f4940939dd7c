// Package layout analyses the geometry of authored slides.
//
// # Reading Order
//
// The [ReadingOrderDetector] returns the text-bearing elements of a slide
// in the order a reader would visit them. Full-width elements such as
// titles split the slide into sections; narrower elements between them are
// grouped into columns, and each column is read top to bottom:
//
//	ordered := layout.Order(slide)
//
// Right-to-left slides read their columns from right to left.
//
// # Checks
//
// The [Checker] looks for problems a renderer would show but a deck
// builder cannot see:
//
//   - elements that extend past the slide edge
//   - text that will not fit its box at the given font size
//   - text boxes that sit on top of each other
//
// Issues are advisory. Decorations placed partly off-slide on purpose are
// reported at [SeverityInfo]:
//
//	for _, issue := range layout.Check(d) {
//		fmt.Println(issue)
//	}
package layout
