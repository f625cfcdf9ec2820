/*
Package wrap word-wraps styled text into fixed-width rows.

Wrapping happens in two passes. Lines runs a greedy word-wrap over the plain
text, breaking at Unicode line-break opportunities and measuring columns per
grapheme cluster. Wrap then replays those line lengths, counted in grapheme
clusters, over the styled grapheme sequence, so every cluster keeps the style
of the segment it came from and no cluster is ever split.

The whitespace a break swallows is accounted for positionally and never shows
up as a row of its own.
*/
package wrap
