package auditlog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-management-backend/database"
)

func TestLogAction_PersistsDetails(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewRepository(database.NewMemoryStore()))

	require.NoError(t, svc.LogAction(ctx, "u1", "e1", ActionEventCreated,
		map[string]interface{}{"name": "Go Meetup"}, "10.0.0.1", StatusSuccess))
	require.NoError(t, svc.LogAction(ctx, "u1", "e2", ActionEventDeleted, nil, "10.0.0.1", StatusFailure))

	logs, err := svc.GetAuditLogs(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, ActionEventDeleted, logs[0].Action)
	assert.JSONEq(t, `{}`, string(logs[0].Details))

	var details map[string]string
	require.NoError(t, json.Unmarshal(logs[1].Details, &details))
	assert.Equal(t, "Go Meetup", details["name"])
	assert.Equal(t, "10.0.0.1", logs[1].IPAddress)
	assert.False(t, logs[1].CreatedAt.IsZero())
}

func TestGetAuditLogs_Filters(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewRepository(database.NewMemoryStore()))

	for i := 0; i < 60; i++ {
		require.NoError(t, svc.LogAction(ctx, "u1", "e1", ActionEventUpdated, nil, "", StatusSuccess))
	}
	require.NoError(t, svc.LogAction(ctx, "u1", "e2", ActionAnnouncementSent, nil, "", StatusFailure))

	logs, err := svc.GetAuditLogs(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, logs, DefaultLimit)

	logs, err = svc.GetAuditLogs(ctx, Filter{EventID: "e2"})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, ActionAnnouncementSent, logs[0].Action)

	logs, err = svc.GetAuditLogs(ctx, Filter{Status: StatusFailure, Action: "announcement"})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
