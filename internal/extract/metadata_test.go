package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge/exambank/constants"
)

func TestInferMetadata_FullFilename(t *testing.T) {
	md := InferMetadata("2201-Mathematics Paper+With+Sol. Evening.pdf")

	require.NotNil(t, md.Year)
	assert.Equal(t, 2201, *md.Year)
	require.NotNil(t, md.Subject)
	assert.Equal(t, constants.Mathematics, *md.Subject)
	require.NotNil(t, md.Shift)
	assert.Equal(t, constants.ShiftEvening, *md.Shift)
}

func TestInferMetadata_FirstYearRunWins(t *testing.T) {
	md := InferMetadata("2023-physics-2024-morning.pdf")

	require.NotNil(t, md.Year)
	assert.Equal(t, 2023, *md.Year)
	require.NotNil(t, md.Subject)
	assert.Equal(t, constants.Physics, *md.Subject)
	require.NotNil(t, md.Shift)
	assert.Equal(t, constants.ShiftMorning, *md.Shift)
}

func TestInferMetadata_CaseInsensitiveTokens(t *testing.T) {
	md := InferMetadata("CHEMISTRY_EVENING_2022.txt")

	require.NotNil(t, md.Subject)
	assert.Equal(t, constants.Chemistry, *md.Subject)
	require.NotNil(t, md.Shift)
	assert.Equal(t, constants.ShiftEvening, *md.Shift)
}

func TestInferMetadata_MathsAlias(t *testing.T) {
	md := InferMetadata("maths-sample.pdf")

	require.NotNil(t, md.Subject)
	assert.Equal(t, constants.Mathematics, *md.Subject)
	assert.Nil(t, md.Year)
	assert.Nil(t, md.Shift)
}

func TestInferMetadata_NothingRecognized(t *testing.T) {
	md := InferMetadata("scan_001.pdf")

	assert.Nil(t, md.Year)
	assert.Nil(t, md.Subject)
	assert.Nil(t, md.Shift)
}
