package uuidgen

import (
	"github.com/google/uuid"
	"github.com/jasonzhang/portfolio/internal/domain/contract"
)

// Generator issues time-ordered (version 7) UUIDs so post IDs sort by creation.
type Generator struct{}

var _ contract.IUUIDGenerator = (*Generator)(nil)

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
