// dao/neo4j_helpers.go
package dao

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// readRecords runs query in a managed read transaction and collects every record.
func readRecords(ctx context.Context, driver neo4j.DriverWithContext, query string, params map[string]any) ([]*neo4j.Record, error) {
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*neo4j.Record), nil
}

// readCount runs a query whose first record's first value is an integer.
func readCount(ctx context.Context, driver neo4j.DriverWithContext, query string, params map[string]any) (int64, error) {
	records, err := readRecords(ctx, driver, query, params)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 || len(records[0].Values) == 0 {
		return 0, nil
	}
	n, _ := records[0].Values[0].(int64)
	return n, nil
}

func writeTx(ctx context.Context, driver neo4j.DriverWithContext, work neo4j.ManagedTransactionWork) (any, error) {
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)
	return session.ExecuteWrite(ctx, work)
}

// ensureConstraints creates uniqueness constraints if they do not exist.
func ensureConstraints(ctx context.Context, driver neo4j.DriverWithContext, statements ...string) error {
	_, err := writeTx(ctx, driver, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, stmt := range statements {
			res, err := tx.Run(ctx, stmt, nil)
			if err != nil {
				return nil, err
			}
			if _, err := res.Consume(ctx); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

// nodeAt returns the node in column i, or nil when the column is null.
func nodeAt(record *neo4j.Record, i int) *neo4j.Node {
	if i >= len(record.Values) {
		return nil
	}
	n, ok := record.Values[i].(neo4j.Node)
	if !ok {
		return nil
	}
	return &n
}

// nodesAt returns the list of nodes in column i.
func nodesAt(record *neo4j.Record, i int) []neo4j.Node {
	if i >= len(record.Values) {
		return nil
	}
	raw, _ := record.Values[i].([]any)
	nodes := make([]neo4j.Node, 0, len(raw))
	for _, v := range raw {
		if n, ok := v.(neo4j.Node); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// stringsAt returns the list of strings in column i.
func stringsAt(record *neo4j.Record, i int) []string {
	if i >= len(record.Values) {
		return nil
	}
	raw, _ := record.Values[i].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
