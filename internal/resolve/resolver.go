package resolve

import (
	"log/slog"

	"stencil/internal/classify"
	"stencil/internal/extract"
	"stencil/internal/logging"
	"stencil/internal/recording"
	"stencil/internal/registry"
)

// Options tunes resolver behavior. The zero value is usable.
type Options struct {
	// FuzzyThreshold overrides the registry default similarity floor.
	FuzzyThreshold float64
	// CoachEmailDomains lists email domains that identify coach accounts
	// during participant elimination.
	CoachEmailDomains []string
	// CoachKeywords lists folder-segment keywords that mark a coach folder
	// in addition to the "Coach <Name>" convention.
	CoachKeywords []string
}

// Stage is one strategy in the cascade. Attempt inspects the context and the
// resolution so far and returns a partial contribution, or nil when it cannot
// make progress. Stages must not panic and must not mutate the context.
type Stage interface {
	Name() string
	Attempt(ctx *recording.Context, current *recording.Resolution) *recording.Partial
}

// Resolver owns the stage cascade and the immutable registries it consults.
type Resolver struct {
	coaches  *registry.Registry
	students *registry.Registry
	stages   []Stage
	logger   *slog.Logger
}

// New constructs a resolver over the provided registries.
func New(coaches, students *registry.Registry, opts Options, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	threshold := opts.FuzzyThreshold
	if threshold <= 0 {
		threshold = registry.DefaultFuzzyThreshold
	}
	extractor := extract.NewExtractor(coaches, students, threshold)
	return &Resolver{
		coaches:  coaches,
		students: students,
		logger:   logging.NewComponentLogger(logger, "resolver"),
		stages: []Stage{
			&patternStage{extractor: extractor},
			&hostEmailStage{coaches: coaches},
			&participantsStage{students: students, coachDomains: opts.CoachEmailDomains, threshold: threshold},
			&transcriptStage{students: students},
			&chatStage{students: students},
			&folderStage{coaches: coaches, students: students, keywords: opts.CoachKeywords, threshold: threshold},
		},
	}
}

// Resolve runs the cascade for one recording. It never fails: missing or
// malformed input degrades to Unknown fields with zero confidence.
func (r *Resolver) Resolve(ctx *recording.Context) recording.Resolution {
	if ctx == nil {
		ctx = &recording.Context{}
	}

	res := recording.Resolution{Coach: recording.Unknown, Student: recording.Unknown}
	var hint recording.SessionType

	for _, stage := range r.stages {
		if res.CoachResolved() && res.StudentResolved() {
			break
		}
		res.MethodTrail = append(res.MethodTrail, stage.Name())
		partial := stage.Attempt(ctx, &res)
		if partial == nil {
			continue
		}
		if hint == "" {
			hint = partial.SessionTypeHint
		}
		mergePartial(&res, *partial)
	}

	if !res.CoachResolved() || !res.StudentResolved() || !res.Week.Valid() {
		res.MethodTrail = append(res.MethodTrail, recording.SourceFallback)
	}
	if res.CoachSource == "" {
		res.CoachSource = recording.SourceFallback
	}
	if res.StudentSource == "" {
		res.StudentSource = recording.SourceFallback
	}
	if res.WeekSource == "" {
		res.WeekSource = recording.SourceFallback
	}

	sessionType, typeConfidence := classify.Classify(ctx, res.Coach, res.Student)
	if sessionType == recording.SessionMISC && hint != "" {
		// Pattern hints only upgrade classification; the keyword checks in
		// classify already cover GamePlan and SAT topics.
		sessionType = hint
	}
	res.SessionType = sessionType

	score(&res, typeConfidence)

	r.logger.Debug("resolution complete",
		logging.String("coach", res.Coach),
		logging.String("student", res.Student),
		logging.String("week", res.Week.String()),
		logging.String("session_type", string(res.SessionType)),
		logging.Int("overall_confidence", res.Overall),
		logging.Any("method_trail", res.MethodTrail),
	)
	return res
}

// mergePartial folds one stage's contribution into the running resolution.
// A field already resolved by an earlier stage is never overwritten; the
// first successful stage wins.
func mergePartial(res *recording.Resolution, p recording.Partial) {
	if !res.CoachResolved() && p.Coach != "" && p.Coach != recording.Unknown {
		res.Coach = p.Coach
		res.CoachSource = p.Source
	}
	if !res.StudentResolved() && p.Student != "" && p.Student != recording.Unknown {
		res.Student = p.Student
		res.StudentSource = p.Source
	}
	if !res.Week.Valid() && p.Week.Valid() {
		res.Week = p.Week
		res.WeekSource = p.Source
	}
}
