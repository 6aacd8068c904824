package status

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/logging"
)

func TestStatusHandler_Get(t *testing.T) {
	handler := NewHandler()
	logData := logging.NewLogData(logrus.New())

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()

	err := handler.Handler(rec, req, logData)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusHandler_RejectsNonGet(t *testing.T) {
	handler := NewHandler()
	logData := logging.NewLogData(logrus.New())

	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	rec := httptest.NewRecorder()

	err := handler.Handler(rec, req, logData)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
