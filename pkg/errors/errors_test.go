package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("widgets.style.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "widgets.style.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "widgets.style.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("modules[1].path", "references unknown module", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "modules[1].path", validationErr.Field)
	require.Contains(t, validationErr.Message, "references unknown module")
}

func TestEmitErrorCarriesCodeAndName(t *testing.T) {
	t.Parallel()

	err := NewEmitError(CodeUnresolvedStruct, "Toast", "unknown struct")

	var emitErr *EmitError
	require.ErrorAs(t, err, &emitErr)
	require.Equal(t, CodeUnresolvedStruct, emitErr.Code)
	require.Equal(t, "Toast", emitErr.Name)
	require.Contains(t, err.Error(), "852")
	require.Contains(t, err.Error(), "Toast")
}

func TestAssetErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no such file")
	err := NewAssetError(CodeAssetNotFound, "icons/send.png", "could not open icon file", underlying)

	var assetErr *AssetError
	require.ErrorAs(t, err, &assetErr)
	require.Equal(t, CodeAssetNotFound, assetErr.Code)
	require.Equal(t, "icons/send.png", assetErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
}
