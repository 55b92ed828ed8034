package utils

import "github.com/google/uuid"

// UUIDGenerator issues record ids. Version 7 ids sort by creation time, which
// keeps the id tiebreak of list queries close to insertion order.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUID v7. If the v7 source fails it falls back to a random
// v4 so that inserts never stall on id generation.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
