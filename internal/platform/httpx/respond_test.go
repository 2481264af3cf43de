package httpx

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemRendersRFC7807(t *testing.T) {
	rec := httptest.NewRecorder()
	Problem(rec, 400, "Invalid Filters", "maxPrice must be non-negative")

	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var pd ProblemDetail
	require.NoError(t, DecodeJSON(httptest.NewRequest("POST", "/", rec.Body), &pd))
	assert.Equal(t, "Invalid Filters", pd.Title)
	assert.Equal(t, 400, pd.Status)
}

func TestDecodeJSONCapsBodySize(t *testing.T) {
	big := `{"note":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(big))

	var out struct {
		Note string `json:"note"`
	}
	assert.Error(t, DecodeJSON(req, &out), "oversized body must not decode")
}
