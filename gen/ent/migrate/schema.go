// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IngestRunsColumns holds the columns for the "ingest_runs" table.
	IngestRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "RUNNING"},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "duplicates_removed", Type: field.TypeInt, Default: 0},
		{Name: "problem_count", Type: field.TypeInt, Default: 0},
		{Name: "year_counts", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// IngestRunsTable holds the schema information for the "ingest_runs" table.
	IngestRunsTable = &schema.Table{
		Name:       "ingest_runs",
		Columns:    IngestRunsColumns,
		PrimaryKey: []*schema.Column{IngestRunsColumns[0]},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "year", Type: field.TypeInt, Default: 0},
		{Name: "subject", Type: field.TypeString, Default: "Unknown"},
		{Name: "topic", Type: field.TypeString, Default: "Uncategorized"},
		{Name: "subtopic", Type: field.TypeString, Nullable: true},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_answer", Type: field.TypeString, Nullable: true, Size: 1},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tagging_method", Type: field.TypeString, Default: "none"},
		{Name: "tag_confidence", Type: field.TypeInt, Default: 0},
		{Name: "source_pdf", Type: field.TypeString, Nullable: true},
		{Name: "fingerprint", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeUUID, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_ingest_runs_questions",
				Columns:    []*schema.Column{QuestionsColumns[14]},
				RefColumns: []*schema.Column{IngestRunsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IngestRunsTable,
		QuestionsTable,
	}
)

func init() {
	IngestRunsTable.Annotation = &entsql.Annotation{
		Table: "ingest_runs",
	}
	QuestionsTable.ForeignKeys[0].RefTable = IngestRunsTable
	QuestionsTable.Annotation = &entsql.Annotation{
		Table: "questions",
	}
}
