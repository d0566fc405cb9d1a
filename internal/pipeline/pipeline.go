// Package pipeline coordinates the extraction stages: clean, segment,
// parse, dedupe, tag, validate.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/internal/dataset"
	"github.com/examtools/questionbank/internal/entity"
	"github.com/examtools/questionbank/internal/ingest"
	"github.com/examtools/questionbank/internal/parser"
	"github.com/examtools/questionbank/internal/segment"
	"github.com/examtools/questionbank/internal/tagger"
	"github.com/examtools/questionbank/internal/textclean"
	"github.com/examtools/questionbank/internal/validate"
)

type Config struct {
	// RequireFullOptions discards parsed questions that did not yield all
	// four options instead of letting validation flag them.
	RequireFullOptions bool
}

// Pipeline runs whole documents through every extraction stage.
type Pipeline struct {
	Logger *slog.Logger
	Tagger *tagger.Tagger
	Cfg    Config
}

func New(logger *slog.Logger, tg *tagger.Tagger, cfg Config) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if tg == nil {
		tg = tagger.New(nil, 0, nil, logger)
	}
	return &Pipeline{Logger: logger, Tagger: tg, Cfg: cfg}
}

// Result is everything a run produced: the dataset payload, its summary
// report, and any validation problems found in the kept questions.
type Result struct {
	Payload  dataset.Payload
	Report   dataset.Report
	Problems []validate.Problem
	Parsed   int
	Dropped  int
}

// Status maps a finished result onto a run status.
func (r *Result) Status() constants.RunStatus {
	if len(r.Problems) > 0 {
		return constants.RunStatusValidationFailed
	}
	return constants.RunStatusSucceeded
}

// Run extracts structured questions from the given documents. Parsing is
// lenient (malformed blocks are dropped and counted); validation problems
// on the surviving records are collected, not fatal.
func (p *Pipeline) Run(ctx context.Context, docs []ingest.Document) (*Result, error) {
	p.Logger.Info("pipeline.run.start", "documents", len(docs))

	var parsed []*entity.Question
	dropped := 0
	for _, doc := range docs {
		for _, sec := range ingest.SplitSections(doc.Text) {
			lines := textclean.CleanText(sec.Body)
			subject, topic, subtopic := parser.DetectMetadata(lines, "", "", "")
			prov := parser.Provenance{
				Year:      doc.Year,
				SourcePDF: sec.Source,
				Subject:   subject,
				Topic:     topic,
				Subtopic:  subtopic,
			}
			blocks := segment.Segment(lines)
			kept := 0
			for _, b := range blocks {
				q, ok := parser.ParseBlock(b, prov)
				if !ok {
					dropped++
					continue
				}
				if p.Cfg.RequireFullOptions && len(q.Options) < len(constants.OptionKeys) {
					dropped++
					continue
				}
				parsed = append(parsed, q)
				kept++
			}
			p.Logger.Debug("pipeline.section",
				"source", sec.Source,
				"year", doc.Year,
				"blocks", len(blocks),
				"kept", kept,
			)
		}
	}
	p.Logger.Info("pipeline.parse.done", "parsed", len(parsed), "dropped", dropped)

	res, err := p.RunQuestions(ctx, parsed)
	if err != nil {
		return nil, err
	}
	res.Dropped = dropped
	return res, nil
}

// RunQuestions runs the post-parse stages (dedupe, tag, validate) over an
// already parsed batch, e.g. questions merged from earlier payload files.
func (p *Pipeline) RunQuestions(ctx context.Context, parsed []*entity.Question) (*Result, error) {
	payload, report := dataset.Build(parsed)
	p.Logger.Info("pipeline.dedupe.done",
		"kept", payload.Count,
		"duplicates_removed", payload.DuplicatesRemoved,
	)

	tagged := 0
	for _, q := range payload.Questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if q.Subject != "" && q.Subject != constants.SubjectUnknown {
			// Explicit metadata from the paper wins over automatic tagging.
			continue
		}
		p.Tagger.Tag(ctx, q)
		tagged++
	}
	p.Logger.Info("pipeline.tag.done", "tagged", tagged)

	problems, _ := validate.Validate(payload.Questions)
	if len(problems) > 0 {
		p.Logger.Warn("pipeline.validate.problems", "count", len(problems))
	}

	return &Result{
		Payload:  payload,
		Report:   report,
		Problems: problems,
		Parsed:   len(parsed),
	}, nil
}
