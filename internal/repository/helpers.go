package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/anhtong/guild-api/internal/database"
	"github.com/anhtong/guild-api/internal/model"
)

// newRecordID generates a client-side record id (table:key). IDs are
// assigned before insert so batched statements can reference the new
// record inside the same transaction.
func newRecordID(table string) string {
	return table + ":" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// queryRows runs a list query and returns the row maps of the first statement.
func queryRows(ctx context.Context, db database.Database, query string, vars map[string]interface{}) ([]map[string]interface{}, error) {
	result, err := db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, nil
	}

	resp, ok := result[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected response format", database.ErrQuery)
	}
	rawRows, ok := resp["result"].([]interface{})
	if !ok {
		return nil, nil
	}

	rows := make([]map[string]interface{}, 0, len(rawRows))
	for _, raw := range rawRows {
		if row, ok := raw.(map[string]interface{}); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// asMap converts a QueryOne result into a row map.
func asMap(result interface{}) (map[string]interface{}, error) {
	row, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result format", database.ErrQuery)
	}
	return row, nil
}

// convertSurrealID converts a SurrealDB ID (which may be a complex object) to a string
func convertSurrealID(id interface{}) string {
	if str, ok := id.(string); ok {
		return str
	}

	if rid, ok := id.(models.RecordID); ok {
		return fmt.Sprintf("%s:%v", rid.Table, rid.ID)
	}
	if rid, ok := id.(*models.RecordID); ok && rid != nil {
		return fmt.Sprintf("%s:%v", rid.Table, rid.ID)
	}

	// Handle map format: {"tb": "user", "id": {"String": "demo"}} or similar
	if m, ok := id.(map[string]interface{}); ok {
		tb := ""
		idPart := ""

		if t, ok := m["tb"].(string); ok {
			tb = t
		} else if t, ok := m["Table"].(string); ok {
			tb = t
		}

		if idVal, ok := m["id"]; ok {
			idPart = extractIDValue(idVal)
		} else if idVal, ok := m["ID"]; ok {
			idPart = extractIDValue(idVal)
		}

		if tb != "" && idPart != "" {
			return tb + ":" + idPart
		}
		if idPart != "" {
			return idPart
		}
	}

	return fmt.Sprintf("%v", id)
}

// extractIDValue extracts the ID value which may be nested
func extractIDValue(val interface{}) string {
	if str, ok := val.(string); ok {
		return str
	}
	if m, ok := val.(map[string]interface{}); ok {
		if s, ok := m["String"].(string); ok {
			return s
		}
		if s, ok := m["string"].(string); ok {
			return s
		}
	}
	return fmt.Sprintf("%v", val)
}

// formatTime renders a timestamp for type::datetime() query arguments.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ptrToNone unwraps an optional value for queries that branch on NONE.
func ptrToNone[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

// getString extracts a string value from a row map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getStringPtr extracts an optional string value from a row map
func getStringPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// getInt extracts an int value from a row map
func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}

// getBool extracts a bool value from a row map
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

// getTime extracts a timestamp from a row map, handling the formats the
// SurrealDB client may return
func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	case models.CustomDateTime:
		return v.Time
	case *models.CustomDateTime:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

// getStringSlice extracts a string slice from a row map
func getStringSlice(m map[string]interface{}, key string) []string {
	if v, ok := m[key].([]interface{}); ok {
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

// getClasses extracts a class tag list from a row map
func getClasses(m map[string]interface{}, key string) []model.Class {
	raw := getStringSlice(m, key)
	if raw == nil {
		return nil
	}
	classes := make([]model.Class, len(raw))
	for i, s := range raw {
		classes[i] = model.Class(s)
	}
	return classes
}

// getTimeSlots extracts a time slot list from a row map
func getTimeSlots(m map[string]interface{}, key string) []model.TimeSlot {
	raw := getStringSlice(m, key)
	if raw == nil {
		return nil
	}
	slots := make([]model.TimeSlot, len(raw))
	for i, s := range raw {
		slots[i] = model.TimeSlot(s)
	}
	return slots
}

// classStrings converts class tags to plain strings for query vars
func classStrings(classes []model.Class) []string {
	if classes == nil {
		return nil
	}
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = string(c)
	}
	return out
}

// slotStrings converts time slots to plain strings for query vars
func slotStrings(slots []model.TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = string(s)
	}
	return out
}
