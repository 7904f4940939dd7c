// Package model provides the in-memory representation of an authored slide
// deck.
//
// Every exporter in this module (PPTX, HTML handout, PNG previews) consumes
// these types, and the PPTX reader converts files back into them, making
// them the primary API for building and inspecting decks.
//
// # Deck Structure
//
// The [Deck] type owns an ordered sequence of slides:
//
//	d := model.NewDeck(model.Inches(16), model.Inches(9))
//	d.Metadata.Title = "Understanding Tokens"
//	s := d.NewSlide()
//
// A [Slide] belongs to exactly one deck. Adding a slide that is already owned
// by another deck fails with [ErrSlideOwned].
//
// # Elements
//
// Slide content implements the [Element] interface. The concrete types are:
//
//   - [TextBox] - a positioned text frame
//   - [Shape] - a preset geometry (rectangle, rounded rectangle, ellipse,
//     right arrow) with fill, outline, rotation and optional text
//   - [Connector] - a straight line between two points
//
// Elements are drawn in insertion order, so the last element added is on top.
//
// # Units
//
// Positions and sizes are expressed in English Metric Units ([EMU]), the
// unit used by Office Open XML. [Inches] and [Pt] convert from the units
// slide layouts are usually written in. Font sizes are plain points.
package model
