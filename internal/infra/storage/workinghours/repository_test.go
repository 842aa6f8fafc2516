package workinghours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	"github.com/m04kA/SMC-NailStudio/pkg/ptr"
	"github.com/m04kA/SMC-NailStudio/pkg/types"
)

func TestBuildUpsertQuery_ClosedDayKeepsRow(t *testing.T) {
	query, args, err := buildUpsertQuery(&domain.WorkingDay{DayOfWeek: domain.Tuesday, IsWorking: false}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO working_hours")
	assert.Contains(t, query, "ON CONFLICT (day_of_week) DO UPDATE")
	assert.Equal(t, []interface{}{1, "Martes", false, nil, nil}, args)
}

func TestBuildUpsertQuery_WorkingDay(t *testing.T) {
	day := &domain.WorkingDay{
		DayOfWeek: domain.Saturday,
		IsWorking: true,
		StartTime: ptr.Ptr(types.TimeString("10:00")),
		EndTime:   ptr.Ptr(types.TimeString("15:00")),
	}

	_, args, err := buildUpsertQuery(day).ToSql()
	require.NoError(t, err)

	assert.Equal(t, []interface{}{5, "Sábado", true, types.TimeString("10:00"), types.TimeString("15:00")}, args)
}
