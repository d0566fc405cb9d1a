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

type Question struct{ ent.Schema }

func (Question) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "questions"},
	}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// 0 means the source year is unknown.
		field.Int("year").Default(0),
		field.String("subject").Default("Unknown"),
		field.String("topic").Default("Uncategorized"),
		field.String("subtopic").Optional(),
		field.Text("question_text").NotEmpty(),
		field.JSON("options", map[string]string{}),
		field.String("correct_answer").Optional().MaxLen(1),
		field.Text("explanation").Optional(),
		field.String("tagging_method").Default("none"),
		field.Int("tag_confidence").Default(0),
		field.String("source_pdf").Optional(),
		field.UUID("run_id", uuid.UUID{}).Optional(),
		// sha256 over year + normalized text + options.
		field.String("fingerprint").NotEmpty().Unique().MaxLen(64),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY questions -> ONE run (FK: questions.run_id)
		edge.From("run", IngestRun.Type).
			Ref("questions").
			Field("run_id").
			Unique(),
	}
}
