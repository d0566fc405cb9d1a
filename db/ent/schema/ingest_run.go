package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type IngestRun struct{ ent.Schema }

func (IngestRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingest_runs"},
	}
}

func (IngestRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("status").Default("RUNNING"),
		field.Int("total_questions").Default(0),
		field.Int("duplicates_removed").Default(0),
		field.Int("problem_count").Default(0),
		field.JSON("year_counts", map[string]int{}).Optional(),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (IngestRun) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE run -> MANY questions
		edge.To("questions", Question.Type),
	}
}
