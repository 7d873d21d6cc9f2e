package eventlogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOrderBy_WhenAliasedField_ThenTranslatesToPhysicalColumn(t *testing.T) {
	tests := []struct {
		orderBy        string
		expectedColumn string
		expectedDesc   bool
	}{
		{"event_log_id", "id", false},
		{"-event_log_id", "id", true},
		{"when", "dttm", false},
		{"-when", "dttm", true},
		{"dag_id", "dag_id", false},
		{"task_id", "task_id", false},
		{"run_id", "run_id", false},
		{"event", "event", false},
		{"-owner", "owner", true},
		{"extra", "extra", false},
	}

	for _, tt := range tests {
		t.Run(tt.orderBy, func(t *testing.T) {
			column, descending, err := resolveOrderBy(tt.orderBy)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedColumn, column)
			assert.Equal(t, tt.expectedDesc, descending)
		})
	}
}

func TestResolveOrderBy_WhenUnknownField_ThenFailsValidation(t *testing.T) {
	for _, orderBy := range []string{"id", "dttm", "unknown", "-unknown", "", "--when"} {
		t.Run(orderBy, func(t *testing.T) {
			_, _, err := resolveOrderBy(orderBy)

			var validationErr ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}
