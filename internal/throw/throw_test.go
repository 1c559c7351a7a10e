package throw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecover(t *testing.T) {
	testFn := func(shouldThrow bool, panicValue interface{}) (err error) {
		defer func() {
			recoveredErr := Recover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			Fatalf("kaboom %d!", 3)
		}

		if panicValue != nil {
			panic(panicValue)
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, nil)
		assert.EqualError(t, err, "kaboom 3!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, "true panic")
		})
	})

	t.Run("with foreign error panic", func(t *testing.T) {
		assert.PanicsWithError(t, "not ours", func() {
			testFn(false, errors.New("not ours"))
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, nil)
		assert.NoError(t, err)
	})
}
