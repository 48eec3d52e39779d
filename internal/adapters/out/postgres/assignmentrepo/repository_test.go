package assignmentrepo

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/assignment"

	"github.com/stretchr/testify/assert"
)

func TestPendingAssignmentIndexDDL(t *testing.T) {
	t.Run("carries_no_bind_parameters", func(t *testing.T) {
		assert.NotContains(t, pendingAssignmentIndexDDL, "?")
		assert.NotContains(t, pendingAssignmentIndexDDL, "$1")
	})

	t.Run("filters_on_the_pending_status", func(t *testing.T) {
		assert.Contains(t, pendingAssignmentIndexDDL,
			fmt.Sprintf("WHERE status = %d", assignment.Pending))
	})
}
