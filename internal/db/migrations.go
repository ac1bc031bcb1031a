package db

// Schema is the ordered list of SQL statements that define the booking
// schema. Every statement carries an existence guard so the whole list
// can be re-applied against a live database without errors.
//
// Tables correlate by contact_number value only; no foreign keys are
// declared. Nothing prevents two appointments in the same slot at the
// schema level either — slot exclusivity belongs to the booking flow.
var Schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS users (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		contact_number text UNIQUE NOT NULL,
		name text,
		created_at timestamptz DEFAULT now(),
		updated_at timestamptz DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_contact_number ON users(contact_number)`,

	`CREATE TABLE IF NOT EXISTS appointments (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		contact_number text NOT NULL,
		name text,
		slot_date date NOT NULL,
		slot_time text NOT NULL,
		status text NOT NULL DEFAULT 'booked',
		notes text,
		created_at timestamptz DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_contact_number ON appointments(contact_number)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_slot ON appointments(slot_date, slot_time)`,

	`CREATE TABLE IF NOT EXISTS conversation_summaries (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		contact_number text NOT NULL,
		summary text NOT NULL,
		preferences jsonb DEFAULT '[]',
		booked_slots jsonb DEFAULT '[]',
		created_at timestamptz DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_conversation_summaries_contact_number ON conversation_summaries(contact_number)`,

	`CREATE TABLE IF NOT EXISTS tool_events (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		session_id text NOT NULL,
		tool text NOT NULL,
		status text NOT NULL,
		contact_number text,
		payload jsonb DEFAULT '{}',
		created_at timestamptz DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tool_events_session_id ON tool_events(session_id)`,
}
