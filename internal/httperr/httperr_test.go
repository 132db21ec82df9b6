package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/pkg/errorspkg"
	"github.com/go-petr/pet-loans/pkg/web"
)

func TestWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantRetry  bool
	}{
		{"NotFound", domain.ErrLoanNotFound, http.StatusNotFound, domain.ErrLoanNotFound.Error(), false},
		{"Wrapped", fmt.Errorf("approve: %w", domain.ErrInvalidLoanState), http.StatusConflict, "approve: " + domain.ErrInvalidLoanState.Error(), false},
		{"CapacityExceeded", domain.ErrCapacityExceeded, http.StatusUnprocessableEntity, domain.ErrCapacityExceeded.Error(), false},
		{"Forbidden", domain.ErrLoanOwnerMismatch, http.StatusForbidden, domain.ErrLoanOwnerMismatch.Error(), false},
		{"Invalid", domain.ErrInvalidAmount, http.StatusBadRequest, domain.ErrInvalidAmount.Error(), false},
		{"Unavailable", errorspkg.ErrUnavailable, http.StatusServiceUnavailable, errorspkg.ErrUnavailable.Error(), true},
		{"DuplicateReference", domain.ErrDuplicateReference, http.StatusConflict, domain.ErrDuplicateReference.Error(), false},
		{"Internal", errors.New("pq: relation does not exist"), http.StatusInternalServerError, errorspkg.ErrInternal.Error(), false},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder := httptest.NewRecorder()
			gctx, _ := gin.CreateTestContext(recorder)
			gctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Write(gctx, tc.err)

			if recorder.Code != tc.wantStatus {
				t.Errorf("Status code: got %v, want %v", recorder.Code, tc.wantStatus)
			}

			var res web.Response
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf("res.Error = %q, want %q", res.Error, tc.wantError)
			}

			if got := recorder.Header().Get("Retry-After") != ""; got != tc.wantRetry {
				t.Errorf("Retry-After set = %v, want %v", got, tc.wantRetry)
			}
		})
	}
}
