package idgen

import "github.com/google/uuid"

// Generator produces unique opaque string IDs. Services take a Generator so
// tests can substitute deterministic sequences.
type Generator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 identifiers.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
