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

// OnceBeforeDefault contains the rules to be applied just once before the
// DefaultRules.
var OnceBeforeDefault = []Rule{
	{resolveRelationsRule, resolveRelations},
}

// DefaultRules to apply when analyzing nodes.
var DefaultRules = []Rule{
	{resolveReferencesRule, resolveReferences},
}

// DefaultValidationRules to apply while analyzing nodes.
var DefaultValidationRules = []Rule{
	{validateResolvedRule, validateIsResolved},
}

// OptimizationRules rewrite an already validated plan into an equivalent
// one that does less work.
var OptimizationRules = []Rule{
	{pruneEvalFieldsRule, pruneEvalFields},
	{removeEmptyEvalRule, removeEmptyEval},
	{pushDownLimitPastEvalRule, pushDownLimitPastEval},
	{pushDownFilterPastEvalRule, pushDownFilterPastEval},
	{combineEvalsRule, combineEvals},
}

const (
	resolveRelationsRule       = "resolve_relations"
	resolveReferencesRule      = "resolve_references"
	validateResolvedRule       = "validate_resolved"
	pruneEvalFieldsRule        = "prune_eval_fields"
	removeEmptyEvalRule        = "remove_empty_eval"
	pushDownLimitPastEvalRule  = "pushdown_limit_past_eval"
	pushDownFilterPastEvalRule = "pushdown_filter_past_eval"
	combineEvalsRule           = "combine_evals"
)
