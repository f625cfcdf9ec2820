/*
Package reveal implements the typewriter effect for a dialogue line.

A Typewriter owns one line's grapheme sequence and exposes a growing prefix
of it as time advances. The host calls Advance once per frame with the time
elapsed since the previous frame; large steps catch up several graphemes at
once. Skip reveals everything, and SetLine starts over with new content.

A Typewriter is not safe for concurrent use; it belongs to the single widget
that drives it.
*/
package reveal
