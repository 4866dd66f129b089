package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateExportID gera um identificador curto para correlacionar os logs
// de uma exportação
func GenerateExportID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
