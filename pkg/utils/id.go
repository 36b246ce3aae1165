package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewID gera um identificador curto para runs do pipeline
func NewID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
