// Package nav is the navigation core of the deck player.
//
// A deck is a vertical run of sections: a start section, an intro and a body
// section per group, and an end section. Group bodies hold a horizontal strip
// of slots. Position tracks the vertical section plus a resume slot per group;
// Controller turns next/prev/jump intents into transitions and pushes the
// derived view (offsets, highlights, progress) into a Renderer.
//
// Nothing in this package knows about terminals. Widths and heights are plain
// layout units supplied by a Viewport and a Measurer.
package nav
