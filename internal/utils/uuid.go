package utils

import "github.com/google/uuid"

// UUIDGenerator issues ids for users and study sessions. Version 7 ids sort
// by creation time, which keeps SQL indexes and file dumps in insert order.
type UUIDGenerator struct {
	fallback func() string
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{fallback: uuid.NewString}
}

// Generate returns a UUIDv7, or a random UUIDv4 when the clock based
// generator fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err == nil {
		return id.String()
	}
	if g.fallback != nil {
		return g.fallback()
	}
	return uuid.NewString()
}
