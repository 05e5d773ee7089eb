package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/temperature-survey/internal/config"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Config{LogLevel: "info", LogFormat: "json"})

	logger.Debug("hidden")
	logger.Info("survey complete", "average", 34.65)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "survey complete", rec["msg"])
	assert.InDelta(t, 34.65, rec["average"], 1e-9)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLogger_TextDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Config{LogLevel: "warn", LogFormat: "text"})

	logger.Info("quiet")
	logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetricsForTesting()
	m.ReadingsAccepted.Add(10)
	m.ReadingsRejected.WithLabelValues("out_of_range").Inc()
	m.LastAverage.Set(34.65)

	assert.InDelta(t, 10.0, testutil.ToFloat64(m.ReadingsAccepted), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.ReadingsRejected.WithLabelValues("out_of_range")), 1e-9)

	path := filepath.Join(t.TempDir(), "survey.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "temperature_survey_readings_accepted_total 10")
	assert.Contains(t, string(data), `temperature_survey_readings_rejected_total{reason="out_of_range"} 1`)
	assert.Contains(t, string(data), "temperature_survey_last_average_celsius 34.65")
}

func TestMetrics_WriteTextfileBadPath(t *testing.T) {
	m := NewMetricsForTesting()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "survey.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write metrics textfile")
}
