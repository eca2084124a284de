package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Postgres would round or reject submitted values under a numeric(p,s) typmod.
func TestMoneyColumnsAreUnboundedNumeric(t *testing.T) {
	cases := map[any][]string{
		&Application{}: {"AmountRequested"},
		&LoanType{}:    {"MinAmount", "MaxAmount", "InterestRate"},
	}
	for model, fields := range cases {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)
		for _, name := range fields {
			f := s.LookUpField(name)
			require.NotNil(t, f, name)
			assert.Equal(t, schema.DataType("numeric"), f.DataType, name)
			assert.Zero(t, f.Precision, name)
			assert.Zero(t, f.Scale, name)
		}
	}
}
