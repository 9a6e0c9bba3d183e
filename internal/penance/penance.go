// Package penance hands out flavor-text punishments on failed or
// early-abandoned sessions. A side channel only; it never blocks termination.
package penance

import (
	"encoding/json"
	"log"
	"math/rand"
	"os"
)

// Punishment pairs a penance task with a devil quote.
type Punishment struct {
	Task  string `json:"task"`
	Quote string `json:"quote"`
}

var fallback = Punishment{
	Task:  "Reflect on your coding mistakes and try again with renewed determination.",
	Quote: "Even the devil's files can sometimes be corrupted. Learn from this failure.",
}

type Generator struct {
	punishments []Punishment
}

// NewGenerator loads the punishment list from a JSON file. A missing or
// malformed file is logged and the generator falls back to a single default.
func NewGenerator(path string) *Generator {
	g := &Generator{}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("penance list unavailable (%v), using fallback", err)
		return g
	}
	if err := json.Unmarshal(data, &g.punishments); err != nil {
		log.Printf("penance list malformed (%v), using fallback", err)
		g.punishments = nil
	}
	return g
}

// Random picks one punishment uniformly at random.
func (g *Generator) Random() Punishment {
	if len(g.punishments) == 0 {
		return fallback
	}
	return g.punishments[rand.Intn(len(g.punishments))]
}
