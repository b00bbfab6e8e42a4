package guard_test

import (
	"errors"
	"testing"

	"printship/internal/core/application/usecases/commands"
	"printship/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("object not constructed")

	tests := []struct {
		name    string
		guard   guard.ConstructorGuard
		arg     error
		wantErr error
	}{
		{
			name:  "constructed guard passes",
			guard: guard.NewConstructorGuard(),
			arg:   errNotConstructed,
		},
		{
			name:  "constructed guard passes with nil validation error",
			guard: guard.NewConstructorGuard(),
			arg:   nil,
		},
		{
			name:    "zero value guard returns the caller's error",
			guard:   guard.ConstructorGuard{},
			arg:     errNotConstructed,
			wantErr: errNotConstructed,
		},
		{
			name:    "zero value guard falls back to the default error",
			guard:   guard.ConstructorGuard{},
			arg:     nil,
			wantErr: guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.arg)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

// A guarded value object in miniature. Mirrors how aggregates and commands
// embed the guard so that zero-value instances are rejected by Validate.
type labelFormat struct {
	name  string
	guard guard.ConstructorGuard
}

var errLabelFormatNotConstructed = errors.New("labelFormat must be created via newLabelFormat")

func newLabelFormat(name string) (labelFormat, error) {
	if name == "" {
		return labelFormat{}, errors.New("name is required")
	}
	return labelFormat{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (f labelFormat) Validate() error {
	return f.guard.Validate(errLabelFormatNotConstructed)
}

func TestConstructorGuard_GuardedValueObject(t *testing.T) {
	t.Run("object built through its constructor validates", func(t *testing.T) {
		format, err := newLabelFormat("PDF 4x6")

		require.NoError(t, err)
		require.NoError(t, format.Validate())
		assert.Equal(t, "PDF 4x6", format.name)
	})

	t.Run("zero value object fails validation", func(t *testing.T) {
		var format labelFormat

		err := format.Validate()

		require.Error(t, err)
		assert.Equal(t, errLabelFormatNotConstructed, err)
	})

	t.Run("rejected construction leaves the guard unset", func(t *testing.T) {
		format, err := newLabelFormat("")

		require.Error(t, err)
		assert.Equal(t, errLabelFormatNotConstructed, format.Validate())
	})
}

// The guard is what lets command handlers trust their input: a command built
// as a struct literal never passes Validate, so only constructor-checked
// values reach the domain.
func TestConstructorGuard_GuardsCommands(t *testing.T) {
	t.Run("constructed command validates", func(t *testing.T) {
		cmd, err := commands.NewCreateShippingLabelCommand(42)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("struct literal command is rejected", func(t *testing.T) {
		var cmd commands.CreateShippingLabelCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrCreateShippingLabelCommandIsNotConstructed, err)
	})
}
