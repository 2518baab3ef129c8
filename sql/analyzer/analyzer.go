// Copyright 2024 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyzer

import (
	"context"
	"os"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/plan"
)

// debugAnalyzerKey is the environment variable that turns on debug logging
// for every analyzer built while it is set.
const debugAnalyzerKey = "DEBUG_ANALYZER"

const maxAnalysisIterations = 1000

var (
	// ErrMaxAnalysisIters is returned by a batch whose rules keep changing
	// the plan after its last allowed pass.
	ErrMaxAnalysisIters = errors.NewKind("exceeded max analysis iterations (%d)")

	// ErrInAnalysis wraps failures of the analyzer itself.
	ErrInAnalysis = errors.NewKind("error in analysis: %s")
)

// Builder configures an Analyzer. Custom rules can be placed around the
// built-in resolution and validation batches, and any rule can be disabled
// by name.
type Builder struct {
	beforeResolution []Rule
	afterResolution  []Rule
	beforeValidation []Rule
	afterValidation  []Rule

	disabled map[string]struct{}
	catalog  *sql.Catalog
	cache    *PlanCache
	logger   *logrus.Logger
	config   Config
}

// NewBuilder returns a Builder for analyzers resolving relations against c.
func NewBuilder(c *sql.Catalog) *Builder {
	return &Builder{
		catalog:  c,
		config:   DefaultConfig(),
		disabled: make(map[string]struct{}),
	}
}

// WithConfig replaces the configuration of the analyzer. Rules disabled in
// the configuration are added to the ones already disabled.
func (ab *Builder) WithConfig(cfg Config) *Builder {
	ab.config = cfg
	for _, name := range cfg.DisabledRules {
		ab.disabled[name] = struct{}{}
	}
	return ab
}

// WithDebug turns on debug messages.
func (ab *Builder) WithDebug() *Builder {
	ab.config.Debug = true
	return ab
}

// WithVerbose makes the Analyzer log the plan after every rule that
// changed it.
func (ab *Builder) WithVerbose() *Builder {
	ab.config.Verbose = true
	return ab
}

// WithPlanCache makes the Analyzer look up and store analyzed plans in c.
func (ab *Builder) WithPlanCache(c *PlanCache) *Builder {
	ab.cache = c
	return ab
}

// WithLogger sets the logger the Analyzer writes to. Defaults to the
// logrus standard logger.
func (ab *Builder) WithLogger(l *logrus.Logger) *Builder {
	ab.logger = l
	return ab
}

// RemoveRule disables the rule with the given name in every batch.
func (ab *Builder) RemoveRule(name string) *Builder {
	ab.disabled[name] = struct{}{}
	return ab
}

// AddPreAnalyzeRule adds a rule that runs before relations are resolved.
func (ab *Builder) AddPreAnalyzeRule(name string, fn RuleFunc) *Builder {
	ab.beforeResolution = append(ab.beforeResolution, Rule{Name: name, Apply: fn})
	return ab
}

// AddPostAnalyzeRule adds a rule that runs once references are resolved.
func (ab *Builder) AddPostAnalyzeRule(name string, fn RuleFunc) *Builder {
	ab.afterResolution = append(ab.afterResolution, Rule{Name: name, Apply: fn})
	return ab
}

// AddPreValidationRule adds a rule that runs right before the plan is
// validated.
func (ab *Builder) AddPreValidationRule(name string, fn RuleFunc) *Builder {
	ab.beforeValidation = append(ab.beforeValidation, Rule{Name: name, Apply: fn})
	return ab
}

// AddPostValidationRule adds a rule that runs last, on the optimized plan.
func (ab *Builder) AddPostValidationRule(name string, fn RuleFunc) *Builder {
	ab.afterValidation = append(ab.afterValidation, Rule{Name: name, Apply: fn})
	return ab
}

func (ab *Builder) batch(desc string, iterations int, rules []Rule) *Batch {
	var enabled []Rule
	for _, r := range rules {
		if _, ok := ab.disabled[r.Name]; !ok {
			enabled = append(enabled, r)
		}
	}
	return &Batch{Desc: desc, Iterations: iterations, Rules: enabled}
}

// Build returns the configured Analyzer. Batches run in this order:
// pre-analyzer, once-before, default-rules, post-analyzer, pre-validation,
// validation, optimization and post-validation.
func (ab *Builder) Build() *Analyzer {
	_, debug := os.LookupEnv(debugAnalyzerKey)

	iters := ab.config.MaxIterations
	if iters <= 0 {
		iters = maxAnalysisIterations
	}

	logger := ab.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Analyzer{
		Debug:   debug || ab.config.Debug,
		Verbose: ab.config.Verbose,
		Batches: []*Batch{
			ab.batch("pre-analyzer", iters, ab.beforeResolution),
			ab.batch("once-before", 1, OnceBeforeDefault),
			ab.batch("default-rules", iters, DefaultRules),
			ab.batch("post-analyzer", iters, ab.afterResolution),
			ab.batch("pre-validation", 1, ab.beforeValidation),
			ab.batch("validation", 1, DefaultValidationRules),
			ab.batch("optimization", iters, OptimizationRules),
			ab.batch("post-validation", 1, ab.afterValidation),
		},
		Catalog: ab.catalog,
		Cache:   ab.cache,
		log:     logrus.NewEntry(logger),
	}
}

// Analyzer turns a plan built from query text into a resolved and optimized
// one by running batches of rules over it. It is safe for concurrent use;
// each call to Analyze works on its own copy.
type Analyzer struct {
	// Debug enables the messages written with Log.
	Debug bool
	// Verbose logs the plan after every rule that changed it.
	Verbose bool
	Batches []*Batch
	// Catalog resolves relation names.
	Catalog *sql.Catalog
	// Cache of analyzed plans, may be nil.
	Cache *PlanCache

	debugCtx []string
	log      *logrus.Entry
}

// NewDefault returns an Analyzer with the built-in rules only.
func NewDefault(c *sql.Catalog) *Analyzer {
	return NewBuilder(c).Build()
}

func (a *Analyzer) prefix() string {
	return strings.Join(a.debugCtx, "/")
}

// Log writes an info message when debug is on, prefixed with the batch and
// rule being run.
func (a *Analyzer) Log(msg string, args ...interface{}) {
	if a == nil || !a.Debug {
		return
	}
	if p := a.prefix(); p != "" {
		msg = p + ": " + msg
	}
	a.logger().Infof(msg, args...)
}

// LogNode writes the plan n when verbose is on.
func (a *Analyzer) LogNode(n sql.Node) {
	if a == nil || n == nil || !a.Verbose {
		return
	}
	if p := a.prefix(); p != "" {
		a.logger().Infof("%s:\n%s", p, n)
		return
	}
	a.logger().Info(n.String())
}

// PushDebugContext adds a level to the prefix of log messages.
func (a *Analyzer) PushDebugContext(msg string) {
	if a != nil {
		a.debugCtx = append(a.debugCtx, msg)
	}
}

// PopDebugContext removes the last level added by PushDebugContext.
func (a *Analyzer) PopDebugContext() {
	if a != nil && len(a.debugCtx) > 0 {
		a.debugCtx = a.debugCtx[:len(a.debugCtx)-1]
	}
}

func (a *Analyzer) logger() *logrus.Entry {
	if a.log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return a.log
}

// session returns a copy of the analyzer with its own debug context, so
// every analysis logs under its own id.
func (a *Analyzer) session() (*Analyzer, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, ErrInAnalysis.Wrap(err, "cannot generate analysis id")
	}

	s := *a
	s.debugCtx = nil
	s.log = a.logger().WithField("analysisID", id.String())
	return &s, nil
}

// Analyze resolves and optimizes n. A plan equal to one analyzed before is
// served from the cache when there is one.
func (a *Analyzer) Analyze(ctx context.Context, n sql.Node) (sql.Node, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "analyze")
	span.SetTag("plan", n.String())
	defer span.Finish()

	if a.Cache != nil {
		if cached, ok := a.Cache.Get(n); ok {
			span.SetTag("cached", true)
			return cached, nil
		}
	}

	s, err := a.session()
	if err != nil {
		return nil, err
	}

	s.Log("analyzing %T", n)
	s.LogNode(n)

	result := n
	for _, b := range s.Batches {
		s.PushDebugContext(b.Desc)
		result, err = b.Eval(ctx, s, result)
		s.PopDebugContext()
		switch {
		case ErrMaxAnalysisIters.Is(err):
			s.Log("batch %s: %s", b.Desc, err)
		case err != nil:
			span.SetTag("error", true)
			return nil, err
		}
	}

	span.SetTag("resolved", plan.Resolved(result))
	if a.Cache != nil {
		a.Cache.Put(n, result)
	}
	return result, nil
}
