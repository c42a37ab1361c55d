package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walres/wrparsecxx/dialect"
)

func TestFeatureGateAndAlways (t *testing.T) {
	o, err := dialect.New(dialect.C11, 0, 0)
	assert.NoError(t, err)
	assert.True(t, FeatureGate(dialect.UCNS)(o))
	assert.False(t, FeatureGate(dialect.BINARY_LITERALS)(o))
	assert.True(t, Always(o))
}
