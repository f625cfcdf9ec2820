// Package widget holds the per-widget state of the dialogue display: the
// dialog box revealing the current line, the options box listing choices,
// and the interaction tooltip. Widgets own their state and are driven by a
// host loop; drawing them is left to a renderer.
package widget
