package grouping

import (
	"fmt"
	"math/rand"

	"github.com/pluqqy/fieldgroups/pkg/models"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idLength   = 5

	// maxIDAttempts bounds redraws when a fresh id collides with an existing group.
	maxIDAttempts = 8
)

// IDGenerator produces group identifiers.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }

// RandomIDs draws short alphanumeric tokens. They are local uniqueness tokens
// for tens of groups, not secure identifiers.
type RandomIDs struct{}

func (RandomIDs) NewID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

// SequenceIDs yields prefix1, prefix2, ... for deterministic tests and fixtures.
type SequenceIDs struct {
	Prefix string
	next   int
}

func NewSequenceIDs(prefix string) *SequenceIDs {
	return &SequenceIDs{Prefix: prefix}
}

func (s *SequenceIDs) NewID() string {
	s.next++
	return fmt.Sprintf("%s%d", s.Prefix, s.next)
}

func freshID(groups []models.FieldGroup, ids IDGenerator) string {
	id := ids.NewID()
	for attempt := 1; attempt < maxIDAttempts && indexOfGroup(groups, id) >= 0; attempt++ {
		id = ids.NewID()
	}
	return id
}
