package domain

import "errors"

// ErrNodeNotFound is returned when a script node id cannot be resolved.
var ErrNodeNotFound = errors.New("node not found")

// ErrOptionNotFound is returned when a chosen option id is not offered by the current node.
var ErrOptionNotFound = errors.New("option not found")

// ErrNotAwaitingChoice is returned when a choice is made while lines remain to be shown.
var ErrNotAwaitingChoice = errors.New("not awaiting a choice")

// ErrAwaitingChoice is returned when advancing past lines while options are offered.
var ErrAwaitingChoice = errors.New("awaiting a choice")

// ErrDialogueEnded is returned when advancing a terminated dialogue.
var ErrDialogueEnded = errors.New("dialogue ended")
