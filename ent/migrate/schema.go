// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "answer_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "correct_answer_id", Type: field.TypeString, Default: ""},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
		},
	}
	// CheckEventsColumns holds the columns for the "check_events" table.
	CheckEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "answer_id", Type: field.TypeString},
		{Name: "service", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "is_correct", Type: field.TypeBool, Default: false},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// CheckEventsTable holds the schema information for the "check_events" table.
	CheckEventsTable = &schema.Table{
		Name:       "check_events",
		Columns:    CheckEventsColumns,
		PrimaryKey: []*schema.Column{CheckEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CheckEventsColumns[1]},
			},
			{
				Name:    "checkevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CheckEventsColumns[2]},
			},
			{
				Name:    "checkevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{CheckEventsColumns[3]},
			},
			{
				Name:    "checkevent_success",
				Unique:  false,
				Columns: []*schema.Column{CheckEventsColumns[6]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString, Default: "strict"},
		{Name: "role", Type: field.TypeString, Default: "guest"},
		{Name: "questions_total", Type: field.TypeInt, Default: 0},
		{Name: "questions_checked", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		CheckEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
