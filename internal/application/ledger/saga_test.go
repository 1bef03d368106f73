package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSaga(t *testing.T) {
	ctx := context.Background()

	t.Run("applied steps compensate in reverse order on failure", func(t *testing.T) {
		var trail []string
		sg := newSaga(zap.NewNop())

		step := func(name string) sagaStep {
			return sagaStep{
				name:       name,
				apply:      func(ctx context.Context) error { trail = append(trail, "apply "+name); return nil },
				compensate: func(ctx context.Context) error { trail = append(trail, "undo "+name); return nil },
			}
		}

		require.NoError(t, sg.run(ctx, step("a")))
		require.NoError(t, sg.run(ctx, step("b")))

		boom := errors.New("boom")
		err := sg.run(ctx, sagaStep{
			name:  "c",
			apply: func(ctx context.Context) error { return boom },
		})

		assert.Equal(t, boom, err)
		assert.Equal(t, []string{"apply a", "apply b", "undo b", "undo a"}, trail)
	})

	t.Run("the original error survives a failing compensation", func(t *testing.T) {
		sg := newSaga(zap.NewNop())

		require.NoError(t, sg.run(ctx, sagaStep{
			name:       "a",
			apply:      func(ctx context.Context) error { return nil },
			compensate: func(ctx context.Context) error { return errors.New("compensation failed") },
		}))

		boom := errors.New("boom")
		err := sg.run(ctx, sagaStep{
			name:  "b",
			apply: func(ctx context.Context) error { return boom },
		})

		assert.Equal(t, boom, err)
	})

	t.Run("steps without compensation are skipped during rollback", func(t *testing.T) {
		var undone []string
		sg := newSaga(zap.NewNop())

		require.NoError(t, sg.run(ctx, sagaStep{
			name:  "fire and forget",
			apply: func(ctx context.Context) error { return nil },
		}))
		require.NoError(t, sg.run(ctx, sagaStep{
			name:       "tracked",
			apply:      func(ctx context.Context) error { return nil },
			compensate: func(ctx context.Context) error { undone = append(undone, "tracked"); return nil },
		}))

		_ = sg.run(ctx, sagaStep{
			name:  "failing",
			apply: func(ctx context.Context) error { return errors.New("boom") },
		})

		assert.Equal(t, []string{"tracked"}, undone)
	})
}
