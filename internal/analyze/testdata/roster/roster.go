// Package roster declares record types used by the analyze tests.
package roster

import (
	"time"

	"value-objects/collection"
	"value-objects/record"
)

type Audit struct {
	CreatedBy string `tree:"created_by"`
	Revision  int
}

type Member struct {
	Audit

	ID       int            `tree:"id"`
	Name     string         `tree:"name"`
	Nickname *string        `tree:"nickname"`
	Score    float32        `tree:"score"`
	Tags     []string       `tree:"tags"`
	Extra    []any          `tree:"extra"`
	Limits   map[string]int `tree:"limits"`
	Joined   time.Time      `tree:"joined"`
	Team     *Team          `tree:"team"`
	Meta     any            `tree:"meta"`
	Revision uint8
	Skipped  string `tree:"-"`

	secret string
}

func (m *Member) ToTree() (any, error) { return record.ToTree(m) }

func (m *Member) FromTree(data any) error { return record.FromTree(m, data) }

func (m *Member) Secret() string { return m.secret }

type Team struct {
	Name    string                          `tree:"name"`
	Members *collection.Collection[*Member] `tree:"members"`
}

func (t *Team) ToTree() (any, error) { return record.ToTree(t) }

func (t *Team) FromTree(data any) error { return record.FromTree(t, data) }

type Status string
