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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	logicalplan "github.com/dolthub/go-logical-plan"
	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/analyzer"
	"github.com/dolthub/go-logical-plan/sql/expression"
	"github.com/dolthub/go-logical-plan/sql/plan"
)

// Example of how to analyze a plan with an Engine. The analyzer options can
// be given in a YAML file:
//
// ```
// > go run ./_example config.yaml
// Limit(10)
//  └─ Project(name, doubled)
//      └─ Eval(doubled = value * 2)
//          └─ Filter(value > 1)
//              └─ Relation(mytable)[name, value]
// ```
func main() {
	cfg := analyzer.DefaultConfig()
	if len(os.Args) > 1 {
		var err error
		cfg, err = analyzer.LoadConfig(os.Args[1])
		if err != nil {
			logrus.Fatal(err)
		}
	}

	e, err := logicalplan.New(createTestCatalog(), cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	analyzed, err := e.Analyze(context.Background(), createTestPlan())
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Print(analyzed)
}

func createTestCatalog() *sql.Catalog {
	c := sql.NewCatalog()
	err := c.AddTable("mytable", sql.Schema{
		expression.NewReferenceAttribute("name", sql.Text, false),
		expression.NewReferenceAttribute("value", sql.Long, true),
	})
	if err != nil {
		panic(err)
	}
	return c
}

// createTestPlan builds the plan a parser would produce for
//
//	FROM mytable | EVAL doubled = value * 2, unused = 0 | WHERE value > 1 | KEEP name, doubled | LIMIT 10
func createTestPlan() sql.Node {
	src := func(col int, text string) sql.Source {
		return sql.Source{Line: 1, Column: col, Text: text}
	}

	var n sql.Node = plan.NewUnresolvedRelation(src(1, "FROM mytable"), "mytable")
	n = plan.NewEval(src(16, "EVAL doubled = value * 2, unused = 0"), n, []sql.NamedExpression{
		expression.NewAlias("doubled", expression.NewMult(
			expression.NewUnresolvedAttribute("value"),
			expression.NewLiteral(int64(2), sql.Long),
		)),
		expression.NewAlias("unused", expression.NewLiteral(int64(0), sql.Long)),
	})
	n = plan.NewFilter(src(55, "WHERE value > 1"), expression.NewGreaterThan(
		expression.NewUnresolvedAttribute("value"),
		expression.NewLiteral(int64(1), sql.Long),
	), n)
	n = plan.NewProject(src(73, "KEEP name, doubled"), []sql.NamedExpression{
		expression.NewUnresolvedAttribute("name"),
		expression.NewUnresolvedAttribute("doubled"),
	}, n)
	return plan.NewLimit(src(94, "LIMIT 10"), 10, n)
}
