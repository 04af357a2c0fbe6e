package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹150.00", FormatAmount(15000))
	assert.Equal(t, "₹1.51", FormatAmount(151))
	assert.Equal(t, "₹0.05", FormatAmount(5))
	assert.Equal(t, "₹0.00", FormatAmount(0))
}
