package db

import (
	"strings"
	"testing"
)

func TestEveryStatementIsGuarded(t *testing.T) {
	for i, stmt := range Schema {
		if !strings.Contains(stmt, "IF NOT EXISTS") {
			t.Errorf("statement %d has no existence guard:\n%s", i, stmt)
		}
	}
}

func TestSchemaDeclaresNoForeignKeys(t *testing.T) {
	// tables correlate by contact_number value, never by constraint
	for i, stmt := range Schema {
		if strings.Contains(stmt, "REFERENCES") || strings.Contains(stmt, "FOREIGN KEY") {
			t.Errorf("statement %d declares a foreign key:\n%s", i, stmt)
		}
	}
}

func TestSchemaCoversAllTables(t *testing.T) {
	joined := strings.Join(Schema, "\n")

	for _, table := range []string{
		"users",
		"appointments",
		"conversation_summaries",
		"tool_events",
	} {
		if !strings.Contains(joined, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("schema missing table %s", table)
		}
	}

	for _, index := range []string{
		"idx_users_contact_number",
		"idx_appointments_contact_number",
		"idx_appointments_slot",
		"idx_conversation_summaries_contact_number",
	} {
		if !strings.Contains(joined, index) {
			t.Errorf("schema missing index %s", index)
		}
	}
}

func TestSchemaDefaults(t *testing.T) {
	joined := strings.Join(Schema, "\n")

	if !strings.Contains(joined, "DEFAULT gen_random_uuid()") {
		t.Error("schema missing uuid default")
	}
	if !strings.Contains(joined, "DEFAULT 'booked'") {
		t.Error("appointments missing booked default")
	}
	if !strings.Contains(joined, "CREATE EXTENSION IF NOT EXISTS pgcrypto") {
		t.Error("schema missing pgcrypto extension")
	}
}
