// Package fixture provides sample records used to exercise the containers in tests.
package fixture

import (
	"cmp"
	"fmt"
	"time"
)

type Record struct {
	ID      int64
	Name    string
	Year    int
	Created time.Time
}

// Compare orders records by ID.
func (r *Record) Compare(o *Record) int {
	return cmp.Compare(r.ID, o.ID)
}

func (r *Record) String() string {
	return fmt.Sprintf("%d:%s", r.ID, r.Name)
}

// ByYear orders records by Year, ignoring ID.
func ByYear(a, b *Record) int {
	return cmp.Compare(a.Year, b.Year)
}

type Builder struct {
	r Record
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) ID(id int64) *Builder {
	b.r.ID = id
	return b
}

func (b *Builder) Name(name string) *Builder {
	b.r.Name = name
	return b
}

func (b *Builder) Year(year int) *Builder {
	b.r.Year = year
	return b
}

func (b *Builder) Created(t time.Time) *Builder {
	b.r.Created = t
	return b
}

func (b *Builder) Build() *Record {
	r := b.r
	return &r
}

// Generate builds a record named "name<id>" created the given number of hours after base.
func Generate(id int64, year int, base time.Time, hours int) *Record {
	return NewBuilder().
		ID(id).
		Name(fmt.Sprintf("name%d", id)).
		Year(year).
		Created(base.Add(time.Duration(hours) * time.Hour)).
		Build()
}
