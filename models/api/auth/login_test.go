package authapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePasswordComplexity(t *testing.T) {
	t.Run(`accepts a compliant password`, func(t *testing.T) {
		require.NoError(t, ValidatePasswordComplexity("Sommer2026"))
	})

	t.Run(`rejects short passwords`, func(t *testing.T) {
		require.Error(t, ValidatePasswordComplexity("Ab1"))
	})

	t.Run(`rejects missing character classes`, func(t *testing.T) {
		require.Error(t, ValidatePasswordComplexity("alllowercase1"))
		require.Error(t, ValidatePasswordComplexity("ALLUPPERCASE1"))
		require.Error(t, ValidatePasswordComplexity("NoDigitsHere"))
	})
}
