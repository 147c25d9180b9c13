package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const artifactKeyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewArtifactKey generates a short lowercase identifier used in S3 object keys.
func NewArtifactKey() (string, error) {
	return gonanoid.Generate(artifactKeyAlphabet, 16)
}

// NewSessionName builds a session name from a template and entity name,
// matching the "<template> - <entity>" convention of the dashboards.
func NewSessionName(templateName, entityName string) string {
	return templateName + " - " + entityName
}
