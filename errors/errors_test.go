package errors_test

import (
	"fmt"
	"testing"

	"github.com/oneviews/prisma/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("wrap nil error", func(t *testing.T) {
		var err error
		err = errors.Wrap(err, errors.NotFound, "")
		assert.Nil(t, err)
	})
	t.Run("wrap error", func(t *testing.T) {
		var err = fmt.Errorf("document not found")
		err = errors.Wrap(err, errors.NotFound, "")
		assert.Equal(t, errors.NotFound, errors.Extract(err).Code)
	})
	t.Run("new error", func(t *testing.T) {
		err := errors.New(errors.NotFound, "document not found")
		assert.Equal(t, errors.NotFound, errors.Extract(err).Code)
	})
	t.Run("new error then wrap", func(t *testing.T) {
		err := errors.New(0, "document not found")
		err = errors.Wrap(err, errors.NotFound, "")
		assert.Equal(t, errors.NotFound, errors.Extract(err).Code)
	})
	t.Run("new error then wrap then remove", func(t *testing.T) {
		err := errors.New(0, "document not found")
		err = errors.Wrap(err, errors.NotFound, "")
		e := errors.Extract(err).RemoveError()
		assert.Empty(t, e.Err)
	})
	t.Run("error json string", func(t *testing.T) {
		err := errors.New(0, "document not found")
		err = errors.Wrap(err, errors.NotFound, "")
		e := errors.Extract(err).RemoveError()
		assert.JSONEq(t, `{ "code":404, "messages": ["document not found"]}`, e.Error())
	})
	t.Run("wrapping a coded error stays json encodable", func(t *testing.T) {
		err := errors.New(errors.NotFound, "document not found")
		err = errors.Wrap(err, 0, "get failed")
		assert.JSONEq(t, `{ "code":404, "messages": ["document not found", "get failed"]}`, err.Error())
	})
	t.Run("has code", func(t *testing.T) {
		err := errors.New(errors.Forbidden, "destructive operations are disabled")
		assert.True(t, errors.HasCode(err, errors.Forbidden))
		assert.False(t, errors.HasCode(err, errors.NotFound))
		assert.False(t, errors.HasCode(nil, errors.NotFound))
	})
}
