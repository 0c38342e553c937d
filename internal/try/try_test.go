// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	t.Run("no panic leaves the error untouched", func(t *testing.T) {
		f := func() (err error) {
			defer Recover(&err)
			return nil
		}
		require.NoError(t, f())
	})

	t.Run("converts a panic into a PanicError", func(t *testing.T) {
		f := func() (err error) {
			defer Recover(&err)
			panic("boom")
		}

		err := f()
		require.Error(t, err)

		var perr PanicError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, "boom", perr.Value)
	})

	t.Run("joins the panic with an existing error", func(t *testing.T) {
		base := errors.New("already failed")
		f := func() (err error) {
			defer Recover(&err)
			err = base
			panic("boom")
		}

		err := f()
		require.ErrorIs(t, err, base)

		var perr PanicError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("unwraps error panic values", func(t *testing.T) {
		cause := errors.New("cause")
		f := func() (err error) {
			defer Recover(&err)
			panic(cause)
		}

		require.ErrorIs(t, f(), cause)
	})
}
