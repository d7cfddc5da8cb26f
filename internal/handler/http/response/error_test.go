package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/hrms-backend-go/internal/domain/attendance"
	"github.com/workpulse/hrms-backend-go/internal/domain/leave"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
)

func TestHandleError(t *testing.T) {
	t.Run("missing check-in is reported as not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleError(rec, attendance.ErrNoCheckInFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("duplicate check-in conflict carries the wrapped detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := fmt.Errorf("%w: existing check-in at 2024-03-15T09:00:00Z", attendance.ErrAlreadyCheckedIn)
		HandleError(rec, err)

		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Message, "existing check-in at 2024-03-15T09:00:00Z")
	})

	t.Run("overlapping leave is a conflict", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleError(rec, leave.ErrOverlappingLeave)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleError(rec, user.ErrForbidden)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
