package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	bse, err := CourseByID("BSE")
	require.NoError(t, err)
	bscit, err := CourseByID("BSCIT")
	require.NoError(t, err)

	assert.True(t, ValidateRegistration("BSE-01-0005/2026", bse))
	assert.True(t, ValidateRegistration("BSE-99-0000/0000", bse))
	assert.True(t, ValidateRegistration("BSCIT-03-0042/2026", bscit))

	assert.False(t, ValidateRegistration("BSE-1-0005/2026", bse))
	assert.False(t, ValidateRegistration("BCS-01-0005/2026", bse))
	assert.False(t, ValidateRegistration("bse-01-0005/2026", bse))
	assert.False(t, ValidateRegistration("BSE-01-005/2026", bse))
	assert.False(t, ValidateRegistration("BSE-01-0005/202", bse))
	assert.False(t, ValidateRegistration("BSE-01-0005-2026", bse))
	assert.False(t, ValidateRegistration("BSE-0a-0005/2026", bse))
	assert.False(t, ValidateRegistration("", bse))
	assert.False(t, ValidateRegistration("BSE-01-0005/2026", nil))
}

func TestValidateRegistrationIsAnchored(t *testing.T) {
	bse, err := CourseByID("BSE")
	require.NoError(t, err)

	assert.False(t, ValidateRegistration("XBSE-01-0005/2026", bse))
	assert.False(t, ValidateRegistration("BSE-01-0005/20261", bse))
	assert.False(t, ValidateRegistration(" BSE-01-0005/2026", bse))
	assert.False(t, ValidateRegistration("BSE-01-0005/2026\n", bse))
}

func TestCheckRegistration(t *testing.T) {
	bcs, err := CourseByID("BCS")
	require.NoError(t, err)

	assert.NoError(t, CheckRegistration("BCS-02-0117/2025", bcs))

	err = CheckRegistration("BSE-01-0005/2026", bcs)
	assert.ErrorIs(t, err, ErrRegistrationFormatInvalid)
	assert.Contains(t, err.Error(), "BCS-XX-YYYY/ZZZZ")

	assert.ErrorIs(t, CheckRegistration("BCS-02-0117/2025", nil), ErrRegistrationFormatInvalid)
}
