package reportgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

func TestRenderProducesPDF(t *testing.T) {
	doc, err := Assemble(sampleReportData(), models.Period{Kind: models.PeriodWeek, Date: "2024-05-01"})
	require.NoError(t, err)

	out, err := Render(doc)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderEmptyTables(t *testing.T) {
	doc, err := Assemble(&models.ReportData{}, models.Period{Kind: models.PeriodDay, Date: "2024-05-01"})
	require.NoError(t, err)

	out, err := Render(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderNilDocument(t *testing.T) {
	_, err := Render(nil)
	assert.ErrorIs(t, err, ErrNoData)
}
