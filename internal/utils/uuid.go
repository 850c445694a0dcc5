package utils

import "github.com/google/uuid"

// IDFunc adapts a plain function to the Generate method expected by
// identifier consumers such as the chat session.
type IDFunc func() string

func (f IDFunc) Generate() string {
	return f()
}

// NewTimeOrderedID returns a UUIDv7 string. Identifiers from one process sort
// in creation order. A random v4 is returned when the clock source fails.
func NewTimeOrderedID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TimeOrderedIDs generates message and trace identifiers.
var TimeOrderedIDs = IDFunc(NewTimeOrderedID)
