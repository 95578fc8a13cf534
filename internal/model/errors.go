package model

import "errors"

var (
	ErrNotBootstrapped  = errors.New("session not bootstrapped")
	ErrPreviewReleased  = errors.New("preview already released")
	ErrUnknownPreview   = errors.New("unknown preview handle")
	ErrNoTokenInSession = errors.New("no token in session")
)
