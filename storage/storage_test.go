package storage

import (
	"errors"
	"testing"

	"github.com/dszqbsm/evocrawler/evolution"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

type memStorage struct {
	saved   []*evolution.Record
	flushed int
	err     error
}

func (m *memStorage) Save(records ...*evolution.Record) error {
	m.saved = append(m.saved, records...)
	return m.err
}

func (m *memStorage) Flush() error {
	m.flushed++
	return m.err
}

func TestMulti(t *testing.T) {
	a := &memStorage{}
	b := &memStorage{err: errors.New("disk full")}
	c := &memStorage{err: errors.New("db gone")}

	s := Multi(a, b, c)
	rec := evolution.New("https://www.fut.gg/evolutions/1/")

	err := s.Save(rec)
	assert.Len(t, multierr.Errors(err), 2)
	for _, m := range []*memStorage{a, b, c} {
		assert.Equal(t, []*evolution.Record{rec}, m.saved)
	}

	err = s.Flush()
	assert.ErrorContains(t, err, "disk full")
	assert.ErrorContains(t, err, "db gone")
	assert.Equal(t, 1, a.flushed)

	assert.NoError(t, Multi(a).Flush())
}
