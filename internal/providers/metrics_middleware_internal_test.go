package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusWriter_CapturesStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rr, status: http.StatusOK}

	sw.WriteHeader(http.StatusBadGateway)
	assert.Equal(t, http.StatusBadGateway, sw.status)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
