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

	opentracing "github.com/opentracing/opentracing-go"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/plan"
	"github.com/dolthub/go-logical-plan/sql/transform"
)

// resolveRelations replaces every UnresolvedRelation with a Relation
// carrying the schema registered in the catalog.
func resolveRelations(ctx context.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, resolveRelationsRule)
	defer span.Finish()

	return transform.Node(n, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		r, ok := n.(*plan.UnresolvedRelation)
		if !ok {
			return n, transform.SameTree, nil
		}

		if a.Catalog == nil {
			return nil, transform.SameTree, sql.ErrTableNotFound.New(r.Name())
		}

		schema, err := a.Catalog.Table(r.Name())
		if err != nil {
			return nil, transform.SameTree, err
		}

		a.Log("resolved relation %q", r.Name())
		return plan.NewRelation(r.Source(), r.Name(), schema), transform.NewTree, nil
	})
}
