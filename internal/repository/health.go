package repository

import (
	"context"

	"github.com/takuya-okamoto/zumenkan/constants"
	"github.com/takuya-okamoto/zumenkan/gen/ent"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/internal/common"
)

// CountByStatus returns how many drawings sit in each lifecycle state. Used
// by the health probe as a cheap typed query against the main table.
func CountByStatus(ctx context.Context, client *ent.Client) (map[constants.DrawingStatus]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := client.Drawing.Query().
		GroupBy(drawing.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err, "counting drawings by status")
	}
	out := make(map[constants.DrawingStatus]int, len(rows))
	for _, r := range rows {
		out[constants.DrawingStatus(r.Status)] = r.Count
	}
	return out, nil
}
